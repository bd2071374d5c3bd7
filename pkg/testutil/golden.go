// Package testutil contains helpers for golden-file based tests.
package testutil

import (
	"encoding/json"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	yaml "gopkg.in/yaml.v3"
)

const GoldenUpdateEnv = `TESTUTIL_UPDATE_GOLDEN`

// TB is a interface that is a subset of the testing.TB interface and
// therefore every *testing.T struct can be used.
type TB interface {
	Error(args ...any)
	Errorf(format string, args ...any)
	Log(args ...any)
}

// AssertGolden tests, if the content of filename matches given data. On
// mismatch the test fails. When setting the TESTUTIL_UPDATE_GOLDEN
// environment variable, it will update the file which can be compared
// via a VCS diff.
func AssertGolden(t TB, filename string, data []byte) {
	if os.Getenv(GoldenUpdateEnv) != "" {
		err := os.WriteFile(filename, data, os.FileMode(0644))
		if err != nil {
			t.Error(err)
			return
		}
	}

	golden, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		golden = []byte{}
	} else if err != nil {
		t.Error(err)
		return
	}

	udiff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(golden)),
		B:        difflib.SplitLines(string(data)),
		FromFile: filename,
		ToFile:   "Current",
		Context:  3,
		Eol:      "\n",
	})

	if err != nil {
		t.Error(err)
		return
	}

	if udiff != "" {
		t.Errorf("Generated file '%s' doesn't match golden file. Update it by setting the environment variable %s.", filename, GoldenUpdateEnv)
		t.Log(udiff)
	}
}

// AssertGoldenJSON works like AssertGolden, but converts the data to a
// JSON file.
func AssertGoldenJSON(t TB, filename string, data any) {
	generated, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		t.Error(err)
		return
	}

	generated = append(generated, '\n')

	AssertGolden(t, filename, generated)
}

// AssertGoldenYAML works like AssertGolden, but converts the data to a
// YAML file.
func AssertGoldenYAML(t TB, filename string, data any) {
	generated, err := yaml.Marshal(data)
	if err != nil {
		t.Error(err)
		return
	}

	generated = append(generated, '\n')

	AssertGolden(t, filename, generated)
}
