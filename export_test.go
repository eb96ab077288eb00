package spath

// This file is part of the package tests (package spath) and provides
// helpers that allow tests in the external package to access internal
// package constructs.

// CommonPrefixLen exposes the shared-prefix scan used by RelativeTo.
func CommonPrefixLen(a, b []string) int {
	return commonPrefixLen(a, b)
}

// NewIndexOutOfRangeError constructs an index error using the package-internal constructor.
func NewIndexOutOfRangeError(index, length int) error {
	return newIndexOutOfRangeError(index, length)
}

// NewInvalidPathError constructs an invalid-path error using the package-internal constructor.
func NewInvalidPathError(msg string, cause error) error {
	return newInvalidPathError(msg, cause)
}
