package screening

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/talentbase/hrms-backend-go/internal/domain/screening"
	"github.com/talentbase/hrms-backend-go/internal/pkg/huggingface"
	"github.com/talentbase/hrms-backend-go/internal/pkg/pdftext"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

// SimilarityClient is the slice of the inference client this service needs.
type SimilarityClient interface {
	SentenceSimilarity(ctx context.Context, source string, sentences []string) ([]float64, error)
}

type ScreenRequest struct {
	JobDescription string
	File           multipart.File
	FileHeader     *multipart.FileHeader
}

func (r *ScreenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_description",
			Message: "job_description is required",
		})
	}
	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "resume",
			Message: "resume file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScreeningService interface {
	// Screen extracts the resume text and scores it against the job
	// description via the sentence-similarity model. There is no retry and
	// no cached result; a failed upstream call surfaces as an error, never
	// as a fabricated score.
	Screen(ctx context.Context, req ScreenRequest) (screening.Result, error)
}

type screeningServiceImpl struct {
	client SimilarityClient
}

func NewScreeningService(client SimilarityClient) ScreeningService {
	return &screeningServiceImpl{client: client}
}

// Screen implements ScreeningService.
func (s *screeningServiceImpl) Screen(ctx context.Context, req ScreenRequest) (screening.Result, error) {
	if err := req.Validate(); err != nil {
		return screening.Result{}, err
	}

	resumeText, err := s.extractText(req.File, req.FileHeader)
	if err != nil {
		return screening.Result{}, err
	}

	scores, err := s.client.SentenceSimilarity(ctx, req.JobDescription, []string{resumeText})
	if err != nil {
		return screening.Result{}, err
	}

	percentage := int(math.Round(scores[0] * 100))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	slog.Info("resume screened", "score", percentage, "resume_chars", len(resumeText))

	return screening.Result{
		Score: percentage,
		Summary: fmt.Sprintf(
			"The resume has a semantic similarity score of %d%% compared to the job description. This score reflects keyword and contextual alignment.",
			percentage,
		),
	}, nil
}

func (s *screeningServiceImpl) extractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))

	switch ext {
	case ".pdf":
		text, err := pdftext.Extract(file, header.Size)
		if err != nil {
			return "", fmt.Errorf("%w: %v", screening.ErrUnreadableResume, err)
		}
		return text, nil
	case ".txt":
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("%w: %v", screening.ErrUnreadableResume, err)
		}
		text := strings.TrimSpace(string(raw))
		if text == "" {
			return "", screening.ErrUnreadableResume
		}
		return text, nil
	default:
		return "", screening.ErrUnsupportedFileType
	}
}

// ensure the concrete client satisfies the interface
var _ SimilarityClient = (*huggingface.Client)(nil)
