package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"timetabler/models"
	ai "timetabler/services/intelligence"
	"timetabler/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	filesField   = "files"
	requestField = "request"
)

// TimetableHandler serves the timetable generation endpoint.
type TimetableHandler struct {
	Service        ai.TimetableService
	DefaultModel   string
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// NewTimetableHandler creates a new TimetableHandler instance.
func NewTimetableHandler(svc ai.TimetableService, defaultModel string, maxUploadBytes int64, logger *zap.Logger) *TimetableHandler {
	return &TimetableHandler{
		Service:        svc,
		DefaultModel:   defaultModel,
		MaxUploadBytes: maxUploadBytes,
		Logger:         logger,
	}
}

// GenerateTimetableHandler accepts PDF syllabi under "files" and the JSON
// encoded scheduling parameters under "request".
func (h *TimetableHandler) GenerateTimetableHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, logger, http.StatusBadRequest, fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		utils.JSONError(c, logger, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	rawRequest, ok := firstValue(form, requestField)
	if !ok {
		utils.JSONError(c, logger, http.StatusBadRequest, "Missing form field 'request'")
		return
	}
	req, err := parseTimetableRequest(rawRequest, h.DefaultModel)
	if err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, err.Error())
		return
	}

	headers := form.File[filesField]
	if len(headers) == 0 {
		utils.JSONError(c, logger, http.StatusBadRequest, "At least one PDF file is required in 'files'")
		return
	}
	files, err := readUploads(headers)
	if err != nil {
		utils.JSONError(c, logger, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("generating timetable",
		zap.Int("files", len(files)),
		zap.String("model", req.ModelName),
		zap.Int("num_weeks", req.NumWeeks),
		zap.Strings("days", req.ListOfDays),
	)

	result, err := h.Service.GenerateTimetable(c.Request.Context(), req, files)
	if err != nil {
		var inputErr *ai.InputError
		if errors.As(err, &inputErr) {
			utils.JSONError(c, logger, http.StatusBadRequest, inputErr.Error())
			return
		}
		utils.JSONError(c, logger, http.StatusInternalServerError, "Error generating timetable: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result.Body)
}

// parseTimetableRequest decodes the request form field over the defaults and
// validates it. A syntax error and a validation error produce different messages.
func parseTimetableRequest(raw, defaultModel string) (models.TimetableRequest, error) {
	if !json.Valid([]byte(raw)) {
		return models.TimetableRequest{}, ai.NewInputError("Invalid JSON in request parameter")
	}

	req := models.NewTimetableRequest(defaultModel)
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return models.TimetableRequest{}, &ai.InputError{Message: "Invalid request parameters", Err: err}
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return models.TimetableRequest{}, &ai.InputError{Message: "Invalid request parameters", Err: err}
	}
	if err := req.CheckWindow(); err != nil {
		return models.TimetableRequest{}, &ai.InputError{Message: "Invalid request parameters", Err: err}
	}
	return req, nil
}

func firstValue(form *multipart.Form, key string) (string, bool) {
	values := form.Value[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func readUploads(headers []*multipart.FileHeader) ([]models.SyllabusFile, error) {
	files := make([]models.SyllabusFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readUpload(fh)
		if err != nil {
			return nil, &ai.InputError{Message: "Error reading file " + fh.Filename, Err: err}
		}
		files = append(files, models.SyllabusFile{Filename: fh.Filename, Data: data})
	}
	return files, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
