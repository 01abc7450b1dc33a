// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package goods_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/goods"
	"github.com/taibuivan/gumruk/internal/core/goods/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/storage"
	storagemocks "github.com/taibuivan/gumruk/internal/platform/storage/mocks"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

type uploadCounter struct{ kinds []string }

func (counter *uploadCounter) RecordUpload(kind string) { counter.kinds = append(counter.kinds, kind) }

type fixture struct {
	service  *goods.Service
	repo     *mocks.MockRepository
	guard    *mocks.MockAuthorizer
	store    *storagemocks.MockStore
	uploads  *uploadCounter
	reportID string
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		repo:     mocks.NewMockRepository(ctrl),
		guard:    mocks.NewMockAuthorizer(ctrl),
		store:    storagemocks.NewMockStore(ctrl),
		uploads:  &uploadCounter{},
		reportID: uuid.New(),
	}
	f.store.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/media/" + key }).AnyTimes()
	f.service = goods.NewService(f.repo, f.guard, f.store, f.uploads, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

var actor = &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleInspector)}

func pngPhoto(t *testing.T, width, height int) []byte {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		canvas.Set(x, x%height, color.RGBA{R: 200, A: 255})
	}
	var buffer bytes.Buffer
	require.NoError(t, png.Encode(&buffer, canvas))
	return buffer.Bytes()
}

/*
TestService_Create_Validation checks amount precision and required references.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		good      goods.StoredGood
		wantField string
	}{
		{"zero_amount", goods.StoredGood{ProductID: 1, UnitID: 1, Amount: 0}, goods.FieldAmount},
		{"three_decimals", goods.StoredGood{ProductID: 1, UnitID: 1, Amount: 1.125}, goods.FieldAmount},
		{"missing_product", goods.StoredGood{UnitID: 1, Amount: 2}, goods.FieldProductID},
		{"missing_unit", goods.StoredGood{ProductID: 1, Amount: 2}, goods.FieldUnitID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.good.ReportID = f.reportID

			_, err := f.service.Create(context.Background(), actor, &tt.good)
			require.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.wantField, apperr.As(err).Details[0].Field)
		})
	}
}

/*
TestService_Create_Forbidden stops before inserting when the gate fails.
*/
func TestService_Create_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(apperr.Forbidden("no"))

	_, err := f.service.Create(context.Background(), actor, &goods.StoredGood{ReportID: f.reportID, ProductID: 1, UnitID: 1, Amount: 12.5})
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}

/*
TestService_AddImage resizes the photo and stores it as JPEG.
*/
func TestService_AddImage(t *testing.T) {
	f := newFixture(t)
	goodID := uuid.New()

	f.repo.EXPECT().Get(gomock.Any(), goodID).Return(&goods.StoredGood{ID: goodID, ReportID: f.reportID}, nil)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(nil)

	var stored []byte
	f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg").
		DoAndReturn(func(_ context.Context, key string, body io.Reader, _ string) (storage.Object, error) {
			assert.True(t, strings.HasPrefix(key, "goods/"))
			assert.True(t, strings.HasSuffix(key, "_resized.jpg"))
			assert.Contains(t, key, "/kamaz-yuk_")
			stored, _ = io.ReadAll(body)
			return storage.Object{Key: key}, nil
		})
	f.repo.EXPECT().CreateImage(gomock.Any(), gomock.Any()).Return(nil)

	image, err := f.service.AddImage(context.Background(), actor, goodID, goods.Upload{
		Filename:    "Kamaz ýük.png",
		Body:        bytes.NewReader(pngPhoto(t, 1600, 400)),
		Description: " side view ",
	})
	require.NoError(t, err)

	assert.Equal(t, "side view", image.Description)
	assert.Equal(t, "/media/"+image.Key, image.URL)
	assert.Equal(t, []string{"image"}, f.uploads.kinds)

	config, err := jpeg.DecodeConfig(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, 800, config.Width)
	assert.Equal(t, 200, config.Height)
}

/*
TestService_AddImage_NotAnImage rejects undecodable uploads without storing anything.
*/
func TestService_AddImage_NotAnImage(t *testing.T) {
	f := newFixture(t)
	goodID := uuid.New()

	f.repo.EXPECT().Get(gomock.Any(), goodID).Return(&goods.StoredGood{ID: goodID, ReportID: f.reportID}, nil)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(nil)

	_, err := f.service.AddImage(context.Background(), actor, goodID, goods.Upload{Filename: "a.pdf", Body: strings.NewReader("%PDF-1.7")})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Empty(t, f.uploads.kinds)
}

/*
TestService_UpdateImage_Replace deletes the previous object after the row is updated.
*/
func TestService_UpdateImage_Replace(t *testing.T) {
	f := newFixture(t)
	imageID := uuid.New()
	oldKey := "goods/2024/05/old_abcd1234_resized.jpg"

	f.repo.EXPECT().GetImage(gomock.Any(), imageID).Return(&goods.Image{ID: imageID, Key: oldKey, ReportID: f.reportID}, nil)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(nil)

	gomock.InOrder(
		f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.Object{}, nil),
		f.repo.EXPECT().UpdateImage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, image *goods.Image) error {
			assert.NotEqual(t, oldKey, image.Key)
			return nil
		}),
		f.store.EXPECT().Delete(gomock.Any(), oldKey).Return(nil),
	)

	_, err := f.service.UpdateImage(context.Background(), actor, imageID, goods.Upload{
		Filename: "new.png",
		Body:     bytes.NewReader(pngPhoto(t, 20, 20)),
	})
	require.NoError(t, err)
}

/*
TestService_UpdateImage_RowFailure removes the freshly stored object and keeps the old one.
*/
func TestService_UpdateImage_RowFailure(t *testing.T) {
	f := newFixture(t)
	imageID := uuid.New()
	oldKey := "goods/2024/05/old_abcd1234_resized.jpg"

	f.repo.EXPECT().GetImage(gomock.Any(), imageID).Return(&goods.Image{ID: imageID, Key: oldKey, ReportID: f.reportID}, nil)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(nil)

	var newKey string
	f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string) (storage.Object, error) {
			newKey = key
			return storage.Object{Key: key}, nil
		})
	f.repo.EXPECT().UpdateImage(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	f.store.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		assert.Equal(t, newKey, key)
		return nil
	})

	_, err := f.service.UpdateImage(context.Background(), actor, imageID, goods.Upload{
		Filename: "new.png",
		Body:     bytes.NewReader(pngPhoto(t, 20, 20)),
	})
	require.Error(t, err)
}

/*
TestService_Delete removes every photo object of the good.
*/
func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	goodID := uuid.New()

	f.repo.EXPECT().Get(gomock.Any(), goodID).Return(&goods.StoredGood{
		ID:       goodID,
		ReportID: f.reportID,
		Images:   []goods.Image{{Key: "goods/a.jpg"}, {Key: "goods/b.jpg"}},
	}, nil)
	f.guard.EXPECT().Authorize(gomock.Any(), actor, f.reportID).Return(nil)
	f.repo.EXPECT().Delete(gomock.Any(), goodID).Return(nil)
	f.store.EXPECT().Delete(gomock.Any(), "goods/a.jpg").Return(nil)
	f.store.EXPECT().Delete(gomock.Any(), "goods/b.jpg").Return(errors.New("bucket unavailable"))

	require.NoError(t, f.service.Delete(context.Background(), actor, goodID))
}
