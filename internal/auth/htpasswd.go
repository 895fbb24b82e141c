// Package auth provides the credential store and the HTTP Basic auth
// gate that protects the registration listing.
//
// Credentials come from an htpasswd-style flat file, one "user:hash"
// pair per line, in any format the htpasswd tool writes: MD5 ($apr1$,
// $1$), bcrypt, {SHA}, {SSHA}, SHA-crypt ($5$, $6$) and plain text.
// The file is read once at startup; the resulting Htpasswd is
// read-only and safe for concurrent use.
package auth

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	htpasswd "github.com/tg123/go-htpasswd"
)

// ErrMalformedLine is returned when a credential line cannot be parsed.
var ErrMalformedLine = errors.New("malformed htpasswd line")

// parsers are tried in order for each hash. Plain text accepts
// anything, so it must stay last.
var parsers = append(append([]htpasswd.PasswdParser{}, htpasswd.DefaultSystems...), htpasswd.AcceptPlain)

// Htpasswd is the in-memory credential store.
type Htpasswd struct {
	file  *htpasswd.File
	users int
}

// LoadFile reads the credential file at path.
func LoadFile(path string) (*Htpasswd, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auth.LoadFile: %w", err)
	}
	defer f.Close()

	h, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("auth.LoadFile: %s: %w", path, err)
	}
	return h, nil
}

// Parse reads htpasswd entries from r. Blank lines and lines starting
// with '#' are skipped. A later entry for the same user replaces an
// earlier one.
func Parse(r io.Reader) (*Htpasswd, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	users, err := checkLines(raw)
	if err != nil {
		return nil, err
	}

	// Lines are already shape-checked, so anything reported here is a
	// hash no parser understood.
	var badLine error
	file, err := htpasswd.NewFromReader(bytes.NewReader(raw), parsers, func(err error) {
		if badLine == nil {
			badLine = fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if badLine != nil {
		return nil, badLine
	}

	return &Htpasswd{file: file, users: users}, nil
}

// checkLines rejects lines without a "user:" prefix and counts the
// distinct users.
func checkLines(raw []byte) (int, error) {
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		user, _, ok := strings.Cut(line, ":")
		if !ok || user == "" {
			return 0, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		seen[user] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}

	return len(seen), nil
}

// Len returns the number of users.
func (h *Htpasswd) Len() int {
	return h.users
}

// Verify reports whether password matches the stored hash for user.
// It does not say which of the two was wrong.
func (h *Htpasswd) Verify(user, password string) bool {
	return h.file.Match(user, password)
}
