package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePath_Scenario3(t *testing.T) {
	t.Parallel()

	p := ParsePath("t1/t2/t3/../../../..")
	assert.Equal(t, []string{".."}, p.Segments())
	assert.False(t, p.IsAbsolute())
}

func TestParsePath_CollapsesSeparatorsAndDot(t *testing.T) {
	t.Parallel()

	p := ParsePath("a//b/./c/")
	assert.Equal(t, []string{"a", "b", "c"}, p.Segments())
	assert.Equal(t, "a/b/c", p.String())
}

func TestParsePath_POSIXAbsolute(t *testing.T) {
	t.Parallel()
	p := ParsePath("/a/b")
	assert.True(t, p.IsAbsolute())
	assert.Equal(t, "/a/b", p.String())
}

func TestParsePath_WindowsDriveAbsolute(t *testing.T) {
	t.Parallel()
	p := ParsePath(`C:\a\b`)
	assert.True(t, p.IsAbsolute())
	assert.Equal(t, "C:/a/b", p.String())
}

func TestPath_StemAndExtension(t *testing.T) {
	t.Parallel()
	p := ParsePath("a/b/file.tar.gz")
	assert.Equal(t, "file.tar", p.GetStem())
	assert.Equal(t, ".gz", p.GetExtension())
}

func TestPath_CommonParentAndRelative(t *testing.T) {
	t.Parallel()
	a := ParsePath("/a/b/c")
	b := ParsePath("/a/b/d/e")

	common := a.GetCommonParent(b)
	assert.Equal(t, []string{"a", "b"}, common.Segments())

	rel := a.GetRelativePath(b)
	assert.Equal(t, []string{"..", "d", "e"}, rel.Segments())
}

func TestUTFRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"hello", "héllo wörld", "日本語", ""} {
		runes, res := ToUTF32(s)
		assert.Equal(t, ConversionSuccess, res.Outcome)
		back, _ := FromUTF32(runes)
		assert.Equal(t, s, back)
	}
}
