package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestCartModel_OneOpenCartPerUser(t *testing.T) {
	s, err := schema.Parse(&CartModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx := s.LookIndex("idx_carts_open_user")
	require.NotNil(t, idx, "open cart index is declared")

	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "status = 'open'", idx.Where)
	require.Len(t, idx.Fields, 1)
	assert.Equal(t, "user_id", idx.Fields[0].DBName)
}
