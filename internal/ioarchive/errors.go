package ioarchive

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/gnames/gn"
)

func OpenError(path string, err error) error {
	msg := "Cannot open archive <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open zip archive: %w",
			fn, err),
	}
}

func MissingTablesError(path string, missing []string) error {
	msg := "Archive <em>%s</em> lacks required tables: %s"
	vars := []any{path, strings.Join(missing, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveMissingTablesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing tables: %s",
			fn, strings.Join(missing, ", ")),
	}
}

func TableNotFoundError(path, table string) error {
	msg := "Archive <em>%s</em> has no table <em>%s</em>"
	vars := []any{path, table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveTableNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s not found in archive",
			fn, table),
	}
}

func DecompressError(table string, err error) error {
	msg := "Cannot decompress table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableDecompressError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decompress %s: %w",
			fn, table, err),
	}
}

func ParseError(table string, err error) error {
	msg := "Cannot parse table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %s: %w",
			fn, table, err),
	}
}
