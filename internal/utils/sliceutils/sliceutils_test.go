package sliceutils_test

import (
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/utils/sliceutils"
	"github.com/stretchr/testify/require"
)

func TestAppendIfNotContains(t *testing.T) {
	s := sliceutils.AppendIfNotContains([]string(nil), "repos")
	s = sliceutils.AppendIfNotContains(s, "notes")
	s = sliceutils.AppendIfNotContains(s, "repos")
	require.Equal(t, []string{"repos", "notes"}, s)
}
