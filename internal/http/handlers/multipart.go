package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/service"
)

const (
	defaultMaxUpload = 10 << 20
	// formOverhead: запас на текстовые поля и границы multipart сверх размера файла.
	formOverhead = 1 << 20
	// maxMemory: сколько формы держим в памяти, остальное net/http сбрасывает во временные файлы.
	maxMemory = 8 << 20
)

// form: разобранная форма запроса: multipart или urlencoded.
type form struct {
	r     *http.Request
	files []multipart.File
}

// parseForm разбирает тело запроса. Размер ограничен maxUpload + formOverhead.
// Вызывающий обязан вызвать close() после работы с формой.
func (h *Handlers) parseForm(w http.ResponseWriter, r *http.Request) (*form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+formOverhead)

	err := r.ParseMultipartForm(maxMemory)
	switch {
	case err == nil:
	case errors.Is(err, http.ErrNotMultipart):
		// Допускаем urlencoded-форму без файлов (например, переименование рубрики).
		if err := r.ParseForm(); err != nil {
			return nil, service.ErrInvalidArgument
		}
	default:
		return nil, service.ErrInvalidArgument
	}

	return &form{r: r}, nil
}

// value возвращает значение поля и признак его присутствия в форме.
func (f *form) value(key string) (string, bool) {
	if mf := f.r.MultipartForm; mf != nil {
		if vs, ok := mf.Value[key]; ok && len(vs) > 0 {
			return vs[0], true
		}
	}

	if vs, ok := f.r.PostForm[key]; ok && len(vs) > 0 {
		return vs[0], true
	}

	return "", false
}

// optional: поле как указатель: nil, если поле не передано.
func (f *form) optional(key string) *string {
	v, ok := f.value(key)
	if !ok {
		return nil
	}
	return &v
}

// file возвращает файл поля key как models.Upload; nil, если файла нет.
func (f *form) file(key string) (*models.Upload, error) {
	if f.r.MultipartForm == nil {
		return nil, nil
	}

	hs := f.r.MultipartForm.File[key]
	if len(hs) == 0 {
		return nil, nil
	}

	fh := hs[0]
	file, err := fh.Open()
	if err != nil {
		return nil, service.ErrInvalidArgument
	}
	f.files = append(f.files, file)

	ct := strings.TrimSpace(fh.Header.Get("Content-Type"))
	if ct == "" {
		ct = "application/octet-stream"
	}

	return &models.Upload{Data: file, Size: fh.Size, ContentType: ct}, nil
}

// close закрывает открытые файлы и удаляет временные файлы формы.
func (f *form) close() {
	for _, file := range f.files {
		_ = file.Close()
	}

	if f.r.MultipartForm != nil {
		_ = f.r.MultipartForm.RemoveAll()
	}
}
