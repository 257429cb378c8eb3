package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestExtractTx(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))

	tx := &sqlx.Tx{}
	assert.Same(t, tx, ExtractTx(withTx(context.Background(), tx)))
}

func TestManager_DoJoinsOuterTx(t *testing.T) {
	// db не нужен: вложенный Do не открывает новую транзакцию
	m := NewManager(nil)
	outer := &sqlx.Tx{}
	ctx := withTx(context.Background(), outer)

	called := false
	err := m.Do(ctx, func(ctx context.Context) error {
		called = true
		assert.Same(t, outer, ExtractTx(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	cbErr := errors.New("callback failed")
	err = m.Do(ctx, func(ctx context.Context) error { return cbErr })
	assert.ErrorIs(t, err, cbErr)
}
