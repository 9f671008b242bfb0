package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/s3-model/internal/serviceerrors"
)

type classificationView struct {
	Code       string `json:"code" yaml:"code"`
	Variant    string `json:"variant" yaml:"variant"`
	Known      bool   `json:"known" yaml:"known"`
	Category   string `json:"category" yaml:"category"`
	GRPCCode   string `json:"grpc_code" yaml:"grpc_code"`
	HTTPStatus int    `json:"http_status" yaml:"http_status"`
	Fault      string `json:"fault" yaml:"fault"`
}

func newErrorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Inspect service error codes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "classify <code>",
		Short: "Show the variant and category a service error code maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(cmd.OutOrStdout(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "codes",
		Short: "List the codes that have a dedicated variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := serviceerrors.KnownCodes()
			return render(cmd.OutOrStdout(), a.output, codes, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(codes, "\n"))
				return err
			})
		},
	})

	return cmd
}

func (a *app) runClassify(w io.Writer, code string) error {
	err := serviceerrors.FromCode(code, serviceerrors.Diagnostics{})
	category := err.Category()

	view := classificationView{
		Code:       code,
		Variant:    strings.TrimPrefix(fmt.Sprintf("%T", err), "*serviceerrors."),
		Known:      serviceerrors.IsKnownCode(code),
		Category:   category.String(),
		GRPCCode:   category.GRPCCode().String(),
		HTTPStatus: category.HTTPStatus(),
		Fault:      err.ErrorFault().String(),
	}

	return render(w, a.output, view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s -> %s (%s, grpc %s, http %d)\n",
			view.Code, view.Variant, view.Category, view.GRPCCode, view.HTTPStatus)
		return err
	})
}
