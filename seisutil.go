// Package seisutil provides small utility routines shared by the toolkit
// programs: UTC time string parsing and formatting with fractional seconds,
// fixed-width record unpacking, decimation helpers, base36 encoding, file
// selection and directory creation.
package seisutil
