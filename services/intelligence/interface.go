// File: services/intelligence/interface.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timetabler/models"
	"timetabler/services/syllabus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "timetabler/services/intelligence"

// TimetableService runs the extract -> prompt -> generate -> normalize pipeline.
type TimetableService interface {
	GenerateTimetable(ctx context.Context, req models.TimetableRequest, files []models.SyllabusFile) (*NormalizedResponse, error)
}

// DefaultTimetableService is stateless; one instance serves all requests.
type DefaultTimetableService struct {
	Generator         TextGenerator
	Extractor         syllabus.TextExtractor
	GenerationTimeout time.Duration
	Logger            *zap.Logger
}

func NewDefaultTimetableService(
	generator TextGenerator,
	extractor syllabus.TextExtractor,
	generationTimeout time.Duration,
	logger *zap.Logger,
) *DefaultTimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultTimetableService{
		Generator:         generator,
		Extractor:         extractor,
		GenerationTimeout: generationTimeout,
		Logger:            logger,
	}
}

func (s *DefaultTimetableService) GenerateTimetable(
	ctx context.Context,
	req models.TimetableRequest,
	files []models.SyllabusFile,
) (*NormalizedResponse, error) {
	text, err := s.ExtractSyllabus(files)
	if err != nil {
		return nil, err
	}

	prompt := BuildTimetablePrompt(req, text)
	s.Logger.Debug("prompt built",
		zap.Int("files", len(files)),
		zap.Int("syllabus_chars", len(text)),
		zap.Int("prompt_chars", len(prompt)),
	)

	raw, err := s.generate(ctx, req.ModelName, prompt)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeResponse(raw)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("timetable.strategy", string(normalized.Strategy)))
	s.logOutcome(req.ModelName, normalized)
	return &normalized, nil
}

// ExtractSyllabus checks and extracts every file in upload order and
// concatenates the text. The first bad file rejects the whole request.
func (s *DefaultTimetableService) ExtractSyllabus(files []models.SyllabusFile) (string, error) {
	var all []byte
	for _, f := range files {
		if !syllabus.IsPDFFilename(f.Filename) {
			return "", NewInputError(fmt.Sprintf("File %s is not a PDF", f.Filename))
		}
		text, err := s.Extractor.ExtractText(f.Data)
		if err != nil {
			return "", &InputError{Message: "Error processing PDF", Err: err}
		}
		all = append(all, text...)
	}
	if len(all) == 0 {
		return "", NewInputError("No text extracted from PDFs")
	}
	return string(all), nil
}

func (s *DefaultTimetableService) generate(ctx context.Context, modelName, prompt string) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "gemini.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", modelName),
		attribute.Int("llm.prompt_chars", len(prompt)),
	)

	if s.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.GenerationTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.Generator.GenerateContent(ctx, modelName, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", &GenerationError{Model: modelName, Err: err}
	}
	span.SetAttributes(attribute.Int("llm.response_chars", len(raw)))
	s.Logger.Info("generation completed",
		zap.String("model", modelName),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_chars", len(raw)),
	)
	return raw, nil
}

func (s *DefaultTimetableService) logOutcome(modelName string, n NormalizedResponse) {
	fields := []zap.Field{
		zap.String("model", modelName),
		zap.String("strategy", string(n.Strategy)),
	}
	if n.Strategy == StrategyRaw {
		s.Logger.Warn("model output was not JSON, returning raw text", fields...)
		return
	}

	// Best effort only; a structurally different document is still returned as-is.
	var tt models.Timetable
	if err := json.Unmarshal(n.Body, &tt); err == nil {
		fields = append(fields,
			zap.Int("weeks", len(tt.Timetable)),
			zap.Int("slots", tt.SlotCount()),
		)
	}
	s.Logger.Info("timetable normalized", fields...)
}
