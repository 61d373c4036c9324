package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"stockscore/internal/db/models/postgres/public/model"
	mock_repository "stockscore/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeedUniverse(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)

	handler := seedServiceHandler{UniverseTickerRepository: universeTickerRepository}

	csvPath := filepath.Join(t.TempDir(), "universe.csv")
	err := os.WriteFile(csvPath, []byte(
		"Symbol,Name,Industry\n"+
			"aapl,Apple Inc.,Consumer Electronics\n"+
			"MSFT,Microsoft,Software\n"+
			"AAPL,Apple duplicate,\n"+
			" ,blank symbol,\n",
	), 0644)
	require.NoError(t, err)

	var upserted []model.UniverseTicker
	universeTickerRepository.EXPECT().
		Upsert(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.UniverseTicker) error {
			upserted = rows
			return nil
		})

	count, err := handler.SeedUniverse(context.Background(), "LargeCap", csvPath)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.Len(t, upserted, 2)
	require.Equal(t, "AAPL", upserted[0].Symbol)
	require.Equal(t, "Apple Inc.", *upserted[0].Name)
	require.Equal(t, "Consumer Electronics", *upserted[0].Industry)
	require.Equal(t, "LargeCap", upserted[0].Universe)
	require.Equal(t, "MSFT", upserted[1].Symbol)
	require.NotNil(t, upserted[0].FetchedAt)
}

func TestSeedUniverse_missingFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	handler := seedServiceHandler{
		UniverseTickerRepository: mock_repository.NewMockUniverseTickerRepository(ctrl),
	}

	_, err := handler.SeedUniverse(context.Background(), "LargeCap", "/does/not/exist.csv")
	require.ErrorContains(t, err, "failed to open universe csv")
}
