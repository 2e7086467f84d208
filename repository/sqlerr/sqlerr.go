// Package sqlerr turns MySQL constraint violations into sentinel errors
// the application layer can test with errors.Is.
package sqlerr

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry = 1062
	codeNoReferenced   = 1452
)

var (
	ErrDuplicate  = errors.New("duplicate entry")
	ErrForeignKey = errors.New("referenced row does not exist")
)

type ConstraintError struct {
	sentinel error
	// Key is the violated unique index, e.g. uq_account_email.
	Key string
	err *mysql.MySQLError
}

func (e *ConstraintError) Error() string        { return e.err.Error() }
func (e *ConstraintError) Is(target error) bool { return target == e.sentinel }
func (e *ConstraintError) Unwrap() error        { return e.err }

// Translate wraps duplicate-key and foreign-key errors in a ConstraintError.
// Other errors are returned unchanged.
func Translate(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case codeDuplicateEntry:
		return &ConstraintError{sentinel: ErrDuplicate, Key: duplicateKey(me.Message), err: me}
	case codeNoReferenced:
		return &ConstraintError{sentinel: ErrForeignKey, err: me}
	}
	return err
}

// DuplicateKey returns the index name of a duplicate-entry error, or "".
func DuplicateKey(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) && ce.sentinel == ErrDuplicate {
		return ce.Key
	}
	return ""
}

// message looks like: Duplicate entry 'x' for key 'account.uq_account_email'
func duplicateKey(msg string) string {
	i := strings.LastIndex(msg, "for key '")
	if i < 0 {
		return ""
	}
	key := strings.TrimSuffix(msg[i+len("for key '"):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key
}
