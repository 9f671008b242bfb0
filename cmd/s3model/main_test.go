package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
)

type CLITestSuite struct {
	suite.Suite
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *CLITestSuite) useRedis() *miniredis.Miniredis {
	mr := miniredis.RunT(s.T())
	s.T().Setenv("S3MODEL_CACHE_BACKEND", "redis")
	s.T().Setenv("S3MODEL_REDIS_ENDPOINT", mr.Addr())
	return mr
}

func (s *CLITestSuite) TestVocabList() {
	out, _, err := s.execute("vocab", "list", "StorageClass")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(out, "StorageClass: "))
	s.Contains(out, "GLACIER_IR")

	out, _, err = s.execute("vocab", "list", "-o", "json")
	s.Require().NoError(err)
	var views []vocabularyView
	s.Require().NoError(json.Unmarshal([]byte(out), &views))
	s.Len(views, 19)
}

func (s *CLITestSuite) TestVocabListUnknownName() {
	_, _, err := s.execute("vocab", "list", "Colour")
	s.Require().Error(err)
	s.Contains(err.Error(), `no vocabulary named "Colour"`)
}

func (s *CLITestSuite) TestVocabParse() {
	out, _, err := s.execute("vocab", "parse", "ServerSideEncryption", "aws:kms")
	s.Require().NoError(err)
	s.Equal("aws:kms\n", out)

	out, stderr, err := s.execute("vocab", "parse", "StorageClass", "GLACIER_PLUS", "-o", "yaml", "--log-level", "debug", "--dump-metrics")
	s.Require().NoError(err)
	var view decodedView
	s.Require().NoError(yaml.Unmarshal([]byte(out), &view))
	s.Equal("UnknownToSDKVersion", view.Symbol)
	s.False(view.Known)
	s.Contains(stderr, "unrecognized enum value")
	s.Contains(stderr, `s3model_unrecognized_enum_values_total{vocabulary="StorageClass"} 1`)
}

func (s *CLITestSuite) TestErrorsClassify() {
	out, _, err := s.execute("errors", "classify", "NoSuchBucket", "-o", "json")
	s.Require().NoError(err)
	var view classificationView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.Equal("NoSuchBucket", view.Variant)
	s.Equal("NOT_FOUND", view.Category)
	s.Equal("NotFound", view.GRPCCode)
	s.Equal(404, view.HTTPStatus)
	s.True(view.Known)

	out, stderr, err := s.execute("errors", "classify", "SlowDown")
	s.Require().NoError(err)
	s.Contains(out, "SlowDown -> UnrecognizedServiceError")
	s.Contains(stderr, "unrecognized service error code")
}

func (s *CLITestSuite) TestErrorsCodes() {
	out, _, err := s.execute("errors", "codes")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(out, "AccessDenied\n"))
}

func (s *CLITestSuite) TestRejectsUnknownOutput() {
	_, _, err := s.execute("vocab", "list", "-o", "xml")
	s.Require().Error(err)
	s.Contains(err.Error(), "output")
}

func (s *CLITestSuite) TestCacheRoundTripThroughRedis() {
	mr := s.useRedis()

	out, _, err := s.execute("cache", "remember", "--bucket", "media", "--key", "cat.png", "--etag", `"abc"`)
	s.Require().NoError(err)
	s.Contains(out, "stored media/cat.png")
	s.True(mr.Exists(objectmeta.Key("media", "cat.png")))

	out, _, err = s.execute("cache", "prepare-get", "--bucket", "media", "--key", "cat.png", "-o", "json")
	s.Require().NoError(err)
	var view prepareView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.True(view.Seeded)
	s.Equal(`"abc"`, view.IfNoneMatch)
	s.Len(view.PrepareID, 16)

	_, _, err = s.execute("cache", "forget", "--bucket", "media", "--key", "cat.png")
	s.Require().NoError(err)

	out, _, err = s.execute("cache", "prepare-get", "--bucket", "media", "--key", "cat.png")
	s.Require().NoError(err)
	s.Contains(out, "unconditional (no_snapshot)")

	out, _, err = s.execute("cache", "ping")
	s.Require().NoError(err)
	s.Contains(out, "reachable")
}

func (s *CLITestSuite) TestRememberFromSDKFile() {
	s.useRedis()

	path := filepath.Join(s.T().TempDir(), "head.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{
  "ETag": "\"from-file\"",
  "StorageClass": "DEEP_ARCHIVE",
  "ContentLength": 12
}`), 0o600))

	out, _, err := s.execute("cache", "remember", "--bucket", "media", "--key", "a.bin", "--from-file", path)
	s.Require().NoError(err)
	s.Contains(out, "StorageClass=DEEP_ARCHIVE")

	out, _, err = s.execute("cache", "prepare-get", "--bucket", "media", "--key", "a.bin")
	s.Require().NoError(err)
	s.Contains(out, `If-None-Match "from-file"`)
}

func (s *CLITestSuite) TestCacheValidation() {
	_, _, err := s.execute("cache", "remember", "--key", "cat.png")
	s.Require().Error(err)
	s.Contains(err.Error(), "bucket")

	out, _, err := s.execute("cache", "ping")
	s.Require().NoError(err)
	s.Contains(out, "memory backend")
}

func (s *CLITestSuite) TestCacheSweep() {
	mr := s.useRedis()
	s.Require().NoError(mr.Set(objectmeta.Key("media", "old"), `{"v":0}`))

	out, _, err := s.execute("cache", "sweep", "--dry-run")
	s.Require().NoError(err)
	s.Contains(out, "unreadable objectmeta:media/old")
	s.Contains(out, "deleted 0")

	out, _, err = s.execute("cache", "sweep", "-o", "json")
	s.Require().NoError(err)
	var view sweepView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.Equal(1, view.Deleted)
	s.False(mr.Exists(objectmeta.Key("media", "old")))
}

func (s *CLITestSuite) TestSweepNeedsRedis() {
	_, _, err := s.execute("cache", "sweep")
	s.Require().Error(err)
	s.Contains(err.Error(), "not redis")
}
