package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/s3-model/internal/enum"
	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type vocabularyView struct {
	Name  string   `json:"name" yaml:"name"`
	Known []string `json:"known" yaml:"known"`
}

type decodedView struct {
	Vocabulary string `json:"vocabulary" yaml:"vocabulary"`
	Wire       string `json:"wire" yaml:"wire"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	Known      bool   `json:"known" yaml:"known"`
}

func newVocabCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List and decode enumerations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [name]",
		Short: "List vocabularies and their known wire strings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVocabList(cmd.OutOrStdout(), args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <name> <wire>",
		Short: "Decode a wire string the way a response would be decoded",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVocabParse(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	return cmd
}

func lookupVocabulary(name string) (enum.Descriptor, error) {
	d, ok := types.LookupVocabulary(name)
	if !ok {
		return nil, errors.NotFoundf("no vocabulary named %q", name).WithMeta("vocabulary", name)
	}
	return d, nil
}

func (a *app) runVocabList(w io.Writer, args []string) error {
	descriptors := types.Vocabularies()
	if len(args) == 1 {
		d, err := lookupVocabulary(args[0])
		if err != nil {
			return err
		}
		descriptors = []enum.Descriptor{d}
	}

	views := make([]vocabularyView, len(descriptors))
	for i, d := range descriptors {
		views[i] = vocabularyView{Name: d.Name(), Known: d.KnownWireStrings()}
	}

	return render(w, a.output, views, func(w io.Writer) error {
		for _, v := range views {
			if _, err := fmt.Fprintf(w, "%s: %s\n", v.Name, strings.Join(v.Known, ", ")); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *app) runVocabParse(w io.Writer, name, wire string) error {
	d, err := lookupVocabulary(name)
	if err != nil {
		return err
	}

	symbol, known := d.Describe(wire)
	if !known {
		a.logger.WithFields(logrus.Fields{
			"vocabulary": name,
			"value":      wire,
		}).Debug("unrecognized enum value")
		a.metrics.UnrecognizedEnumValue(name)
	}

	view := decodedView{Vocabulary: d.Name(), Wire: wire, Symbol: symbol, Known: known}
	return render(w, a.output, view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, view.Symbol)
		return err
	})
}
