package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/internal/usecases/managing"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

const (
	multipartMemory   = 8 << 20
	multipartOverhead = 1 << 20
	sniffLen          = 512
)

// UploadCastImage recebe o campo multipart "file" (e "castId" opcional)
// e envia a imagem para o bucket, devolvendo a URL pública
func UploadCastImage(service managing.ManageService, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadCastImage")

		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge,
					fmt.Sprintf("O arquivo deve ter no máximo %d bytes", maxUploadBytes), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo é obrigatório", nil)
			return
		}
		defer file.Close()

		contentType, err := detectContentType(file, header)
		if err != nil {
			writeServiceError(w, err, "Erro ao ler arquivo")
			return
		}

		uploaded, err := service.UploadCastImage(r.Context(), &managing.UploadImageInput{
			CastID:      r.FormValue("castId"),
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Body:        file,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao enviar imagem")
			return
		}

		writeJSON(w, http.StatusOK, uploaded)
	}
}

// detectContentType usa o tipo informado pelo cliente e, na falta dele,
// inspeciona os primeiros bytes do arquivo
func detectContentType(file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType, nil
	}

	buf := make([]byte, sniffLen)
	n, err := file.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
