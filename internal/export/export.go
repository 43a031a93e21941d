// Package export prepares the output directory and writes sequence files
// without clobbering existing ones.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrFileExists indicates an output file is already present.
	ErrFileExists = errors.New("export: file already exists")
	// ErrAborted indicates the user declined to reuse an existing directory.
	ErrAborted = errors.New("export: aborted by user")
)

// Confirmer asks a yes/no question.
type Confirmer func(question string) (bool, error)

// AlwaysYes answers every question with yes.
func AlwaysYes(string) (bool, error) { return true, nil }

// Prompt asks on out and reads y/n answers from in, re-asking until it gets
// one. End of input counts as no.
func Prompt(in io.Reader, out io.Writer) Confirmer {
	sc := bufio.NewScanner(in)
	return func(question string) (bool, error) {
		_, _ = fmt.Fprintf(out, "%s Type y or n... ", question)
		for sc.Scan() {
			switch strings.ToLower(strings.TrimSpace(sc.Text())) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			}
			_, _ = fmt.Fprint(out, "Please type y or n!... ")
		}
		return false, sc.Err()
	}
}

// PrepareDir creates dir, or asks before reusing it if it already exists.
func PrepareDir(dir string, confirm Confirmer) error {
	fi, err := os.Stat(dir)
	switch {
	case err == nil && !fi.IsDir():
		return errors.Errorf("%s exists and is not a directory", dir)
	case err == nil:
		ok, cerr := confirm(fmt.Sprintf("That sequence already has a folder at %s. Continue?", dir))
		if cerr != nil {
			return errors.Wrap(cerr, "read answer")
		}
		if !ok {
			return ErrAborted
		}
		return nil
	case os.IsNotExist(err):
		return errors.Wrapf(os.MkdirAll(dir, 0o755), "create %s", dir)
	default:
		return errors.Wrapf(err, "stat %s", dir)
	}
}

// CheckAbsent fails with ErrFileExists if any path already exists.
func CheckAbsent(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return errors.Wrap(ErrFileExists, p)
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat %s", p)
		}
	}
	return nil
}

// WriteFile creates path exclusively and fills it with fn. A partially
// written file is removed on error.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrap(ErrFileExists, path)
		}
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(fh)
	if err = fn(bw); err != nil {
		return err
	}
	return errors.Wrapf(bw.Flush(), "write %s", path)
}
