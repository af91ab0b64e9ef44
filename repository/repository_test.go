package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/paveg/atlas/internal/errors"
)

func TestLoad(t *testing.T) {
	repo := New(Config{Path: "testdata/countries.json"})

	countries, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 3)

	assert.Equal(t, "Hungary", countries[0].Name)
	assert.Equal(t, "Ecuador", countries[1].Name)
	assert.False(t, countries[2].HasArea())
	assert.Equal(t, 3, repo.Len())
	assert.NotZero(t, repo.Checksum())
}

func TestLoadIsOnce(t *testing.T) {
	repo := New(Config{Path: "testdata/countries.json"})

	first, err := repo.Load(context.Background())
	require.NoError(t, err)

	second, err := repo.Load(context.Background())
	require.NoError(t, err)

	// the same snapshot, not a re-read or a copy
	assert.Same(t, &first[0], &second[0])
	assert.Same(t, &first[0], &repo.All()[0])
}

func TestLoadUnreadableSource(t *testing.T) {
	repo := New(Config{Path: "testdata/does-not-exist.json"})

	_, err := repo.Load(context.Background())
	require.Error(t, err)

	var le *apperrors.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "testdata/does-not-exist.json", le.Path)
}

func TestLoadMalformedSource(t *testing.T) {
	repo := New(Config{Path: "testdata/malformed.json"})

	_, err := repo.Load(context.Background())

	var le *apperrors.LoadError
	require.ErrorAs(t, err, &le)
}

func TestLoadErrorIsNotRetried(t *testing.T) {
	repo := New(Config{Path: "testdata/does-not-exist.json"})

	_, first := repo.Load(context.Background())
	_, second := repo.Load(context.Background())

	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestLoadRespectsMaxRecords(t *testing.T) {
	repo := New(Config{Path: "testdata/countries.json", MaxRecords: 2})

	countries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, countries, 2)
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := New(Config{Path: "testdata/countries.json"})
	_, err := repo.Load(ctx)

	var le *apperrors.LoadError
	assert.ErrorAs(t, err, &le)
}

func TestAllBeforeLoad(t *testing.T) {
	repo := New(Config{Path: "testdata/countries.json"})
	assert.Nil(t, repo.All())
	assert.Zero(t, repo.Len())
}
