package sqlerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.co' for key 'account.uq_account_email'"}
	fk := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	other := &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}

	err := sqlerr.Translate(fmt.Errorf("insert: %w", dup))
	assert.True(t, errors.Is(err, sqlerr.ErrDuplicate))
	assert.False(t, errors.Is(err, sqlerr.ErrForeignKey))
	assert.Equal(t, "uq_account_email", sqlerr.DuplicateKey(err))

	err = sqlerr.Translate(fk)
	assert.True(t, errors.Is(err, sqlerr.ErrForeignKey))
	assert.Equal(t, "", sqlerr.DuplicateKey(err))

	assert.Same(t, other, sqlerr.Translate(other))
	plain := errors.New("boom")
	assert.Same(t, plain, sqlerr.Translate(plain))
	assert.Nil(t, sqlerr.Translate(nil))
}

func TestDuplicateKey_OldServerFormat(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '7-9' for key 'PRIMARY'"}
	assert.Equal(t, "PRIMARY", sqlerr.DuplicateKey(sqlerr.Translate(dup)))
}
