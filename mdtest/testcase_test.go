package mdtest

import (
	"testing"

	"github.com/nalgeon/be"
)

const sampleDoc = "# Samples\n\n" +
	"### Test: one\n\n" +
	"```c\nint x;\n```\n\n" +
	"```json\n{\"kind\":\"Program\"}\n```\n\n" +
	"### Test: two\n\n" +
	"```c\nstruct s;\n```\n\n" +
	"```error\nstruct is not supported\n```\n"

func TestExtractCases(t *testing.T) {
	cases, err := ExtractCases(sampleDoc)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)

	be.Equal(t, cases[0].Name, "one")
	be.Equal(t, cases[0].Input, "int x;")
	be.Equal(t, cases[0].WantTree, `{"kind":"Program"}`)
	be.Equal(t, cases[0].WantError, "")

	be.Equal(t, cases[1].Name, "two")
	be.Equal(t, cases[1].WantError, "struct is not supported")
	be.Equal(t, cases[1].WantTree, "")
}

func TestHeadingWithoutTestPrefixIsIgnored(t *testing.T) {
	doc := "# Notes\n\njust prose\n\n" + sampleDoc
	cases, err := ExtractCases(doc)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)
}

func TestCaseWithoutInputFails(t *testing.T) {
	doc := "### Test: broken\n\n```json\n{}\n```\n"
	_, err := ExtractCases(doc)
	be.True(t, err != nil)
}

func TestCaseWithoutExpectationFails(t *testing.T) {
	doc := "### Test: broken\n\n```c\nint x;\n```\n"
	_, err := ExtractCases(doc)
	be.True(t, err != nil)
}

func TestUnknownFenceLanguageFails(t *testing.T) {
	doc := "### Test: broken\n\n```c\nint x;\n```\n\n```python\nprint()\n```\n"
	_, err := ExtractCases(doc)
	be.True(t, err != nil)
}

func TestFenceOutsideTestCaseFails(t *testing.T) {
	doc := "```c\nint x;\n```\n"
	_, err := ExtractCases(doc)
	be.True(t, err != nil)
}

func TestMultipleExpectationsFail(t *testing.T) {
	doc := "### Test: broken\n\n```c\nint x;\n```\n\n```json\n{}\n```\n\n```error\nboom\n```\n"
	_, err := ExtractCases(doc)
	be.True(t, err != nil)
}

func TestPlainFenceOutsideCasesIsAllowed(t *testing.T) {
	doc := "Intro.\n\n```\nfree-form notes\n```\n\n" + sampleDoc
	cases, err := ExtractCases(doc)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)
}
