package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/photostore"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"net/http"

	"go.uber.org/zap"
)

//nolint: gochecknoglobals
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadPhoto stores an image and appends it after the existing photos. The
// content type is sniffed from the bytes; the client supplied one is ignored.
func (s *inventory) UploadPhoto(ctx context.Context, id domain.VehicleID, body io.Reader) (*domain.VehiclePhoto, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(body, s.options.MaxPhotoBytes+1))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read photo")
	}
	switch {
	case len(data) == 0:
		return nil, serrors.With(serrors.ErrBadRequest, "photo is empty")
	case int64(len(data)) > s.options.MaxPhotoBytes:
		return nil, serrors.With(serrors.ErrBadRequest, "photo exceeds %d bytes", s.options.MaxPhotoBytes)
	}

	contentType := http.DetectContentType(data)
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported photo type %s", contentType)
	}

	key := photostore.PhotoKey(id, ext)
	url, err := s.photos.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not upload photo: %w", err)
	}

	photo, err := s.storage.StorePhoto(ctx, domain.VehiclePhoto{
		VehicleID:   id,
		ObjectKey:   key,
		URL:         url,
		ContentType: contentType,
	})
	if err != nil {
		if delErr := s.photos.Delete(ctx, key); delErr != nil {
			logger.Warn(ctx, "could not remove orphan photo", zap.String("key", key), zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not store photo: %w", err)
	}

	return photo, nil
}

// DeletePhoto removes the photo record and then its object. A failing object
// delete is only logged.
func (s *inventory) DeletePhoto(ctx context.Context, id domain.VehicleID, photoID domain.PhotoID) error {
	photo, err := s.storage.DeletePhoto(ctx, id, photoID)
	if err != nil {
		return fmt.Errorf("could not delete photo: %w", err)
	}
	if photo == nil {
		return serrors.With(serrors.ErrNotFound, "photo %s not found", photoID)
	}

	if err := s.photos.Delete(ctx, photo.ObjectKey); err != nil {
		logger.Warn(ctx, "could not delete photo object", zap.String("key", photo.ObjectKey), zap.Error(err))
	}

	return nil
}

// ReorderPhotos sets the photo order. ordered must list every photo of the
// vehicle exactly once.
func (s *inventory) ReorderPhotos(ctx context.Context,
	id domain.VehicleID,
	ordered []domain.PhotoID) ([]domain.VehiclePhoto, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	current, err := s.storage.PhotosByVehicles(ctx, []domain.VehicleID{id})
	if err != nil {
		return nil, fmt.Errorf("could not get photos: %w", err)
	}
	if len(ordered) != len(current) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"expected %d photo ids, got %d", len(current), len(ordered))
	}

	byID := make(map[domain.PhotoID]domain.VehiclePhoto, len(current))
	for _, p := range current {
		byID[p.ID] = p
	}
	seen := make(map[domain.PhotoID]struct{}, len(ordered))
	out := make([]domain.VehiclePhoto, 0, len(ordered))
	for i, pid := range ordered {
		p, ok := byID[pid]
		if !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "photo %s does not belong to vehicle %s", pid, id)
		}
		if _, dup := seen[pid]; dup {
			return nil, serrors.With(serrors.ErrBadRequest, "photo %s listed twice", pid)
		}
		seen[pid] = struct{}{}
		p.Position = i
		out = append(out, p)
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.SetPhotoPositions(ctx, id, ordered) //nolint: wrapcheck
	}); err != nil {
		return nil, fmt.Errorf("could not reorder photos: %w", err)
	}

	return out, nil
}
