package iosubset

import (
	"fmt"
	"runtime"

	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/gnames/gn"
)

func CancelledError(err error) error {
	msg := "Subset creation was cancelled"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubsetCancelledError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: run cancelled: %w",
			fn, err),
	}
}

func OutputDirError(dir string, err error) error {
	msg := "Cannot prepare output directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot prepare directory: %w",
			fn, err),
	}
}

func WriteTableError(path string, err error) error {
	msg := "Cannot write table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write table: %w",
			fn, err),
	}
}

func WriteReportError(path string, err error) error {
	msg := "Cannot write report <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write report: %w",
			fn, err),
	}
}

func CommitOutputError(path string, err error) error {
	msg := "Cannot move output into place at <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CommitOutputError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot commit output: %w",
			fn, err),
	}
}
