package subset

import (
	"fmt"
	"runtime"

	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/gnames/gn"
)

func InsufficientPopulationError(want, have int) error {
	msg := "Requested %d admissions, but only %d exist"
	vars := []any{want, have}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InsufficientPopulationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sample size %d exceeds population %d",
			fn, want, have),
	}
}

func KeyColumnMissingError(table, column string) error {
	msg := "Table <em>%s</em> has no column <em>%s</em>"
	vars := []any{table, column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyColumnMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %s not found in table %s",
			fn, column, table),
	}
}
