package idgen_test

import (
	"encoding/base64"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestRequestID() {
	g := &idgen.RequestIDGenerator{}
	id := g.Generate()
	s.Regexp(regexp.MustCompile(`^[0-9A-F]{16}$`), id)
	s.NotEqual(id, g.Generate())
}

func (s *IDGenTestSuite) TestHostID() {
	id := (&idgen.HostIDGenerator{}).Generate()
	raw, err := base64.StdEncoding.DecodeString(id)
	s.Require().NoError(err)
	s.Len(raw, 48)
}

func (s *IDGenTestSuite) TestVersionID() {
	id := (&idgen.VersionIDGenerator{}).Generate()
	s.Regexp(regexp.MustCompile(`^[0-9a-f]{32}$`), id)
}

func (s *IDGenTestSuite) TestSequential() {
	g := idgen.NewSequential("req")
	s.Equal("req-1", g.Generate())
	s.Equal("req-2", g.Generate())
	s.Equal("1", idgen.NewSequential("").Generate())
}

func (s *IDGenTestSuite) TestSequentialIsUniqueUnderConcurrency() {
	g := idgen.NewSequential("")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), true)
			s.False(dup)
		}()
	}
	wg.Wait()
}
