package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/studentcert/studentcert/internal/certificate/dto"
	"github.com/studentcert/studentcert/pkg/errs"
)

type FileServiceImpl struct {
	uploadDir string
}

func CreateFileService(uploadDir string) FileService {
	return &FileServiceImpl{uploadDir: uploadDir}
}

// UploadFile stores the file under a UUID-prefixed name so repeated uploads
// of the same filename never collide.
func (s *FileServiceImpl) UploadFile(file *multipart.FileHeader, fileType string) (res dto.FileUploadData, err error) {
	if err = os.MkdirAll(s.uploadDir, 0o755); err != nil {
		log.Error().Err(err).Str("component", "UploadFile").Msg("failed to create upload directory")
		return res, errs.ErrInternalServer
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadFile").Msg("failed to open uploaded file")
		return res, errs.ErrInternalServer
	}
	defer src.Close()

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename))
	path := filepath.Join(s.uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("component", "UploadFile").Msg("failed to create file")
		return res, errs.ErrInternalServer
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		log.Error().Err(err).Str("component", "UploadFile").Msg("failed to write file")
		return res, errs.ErrInternalServer
	}

	log.Info().Str("component", "UploadFile").Str("filename", filename).Str("type", fileType).Msg("file uploaded")

	return dto.FileUploadData{
		Filename: filename,
		Path:     path,
		Size:     size,
		Mimetype: file.Header.Get("Content-Type"),
	}, nil
}
