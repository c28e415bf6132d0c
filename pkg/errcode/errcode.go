package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	CopyFileError

	// Logging errors
	CreateLogFileError

	// Archive errors
	ArchiveOpenError
	ArchiveMissingTablesError
	ArchiveTableNotFoundError
	TableDecompressError
	TableParseError

	// Sampling errors
	InsufficientPopulationError
	KeyColumnMissingError

	// Subset errors
	SubsetCancelledError
	OutputDirError
	OutputNotEmptyError
	WriteTableError
	WriteReportError
	CommitOutputError
)
