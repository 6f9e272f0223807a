package screening

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/hrms-backend-go/internal/domain/screening"
)

type fakeSimilarityClient struct {
	scores     []float64
	err        error
	lastSource string
	lastTexts  []string
}

func (f *fakeSimilarityClient) SentenceSimilarity(_ context.Context, source string, sentences []string) ([]float64, error) {
	f.lastSource = source
	f.lastTexts = sentences
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

// memoryFile adapts a byte slice to multipart.File.
type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func uploadOf(name, content string) (multipart.File, *multipart.FileHeader) {
	file := memoryFile{bytes.NewReader([]byte(content))}
	header := &multipart.FileHeader{
		Filename: name,
		Size:     int64(len(content)),
	}
	return file, header
}

func TestScreenTxtResume(t *testing.T) {
	client := &fakeSimilarityClient{scores: []float64{0.8234}}
	svc := NewScreeningService(client)

	file, header := uploadOf("resume.txt", "  Senior Go engineer with 8 years of experience.  ")
	result, err := svc.Screen(context.Background(), ScreenRequest{
		JobDescription: "Go backend engineer",
		File:           file,
		FileHeader:     header,
	})
	require.NoError(t, err)

	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "The resume has a semantic similarity score of 82% compared to the job description. This score reflects keyword and contextual alignment.", result.Summary)
	assert.Equal(t, "Go backend engineer", client.lastSource)
	assert.Equal(t, []string{"Senior Go engineer with 8 years of experience."}, client.lastTexts)
}

func TestScreenRoundsAndClamps(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  int
	}{
		{"rounds half up", 0.875, 88},
		{"rounds down", 0.8234, 82},
		{"clamps above one", 1.2, 100},
		{"clamps below zero", -0.1, 0},
		{"exact zero", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewScreeningService(&fakeSimilarityClient{scores: []float64{c.score}})
			file, header := uploadOf("resume.txt", "some resume text")
			result, err := svc.Screen(context.Background(), ScreenRequest{
				JobDescription: "job",
				File:           file,
				FileHeader:     header,
			})
			require.NoError(t, err)
			assert.Equal(t, c.want, result.Score)
		})
	}
}

func TestScreenUnsupportedExtension(t *testing.T) {
	svc := NewScreeningService(&fakeSimilarityClient{scores: []float64{0.5}})

	file, header := uploadOf("resume.docx", "binary blob")
	_, err := svc.Screen(context.Background(), ScreenRequest{
		JobDescription: "job",
		File:           file,
		FileHeader:     header,
	})
	assert.ErrorIs(t, err, screening.ErrUnsupportedFileType)
}

func TestScreenEmptyTxt(t *testing.T) {
	svc := NewScreeningService(&fakeSimilarityClient{scores: []float64{0.5}})

	file, header := uploadOf("resume.txt", "   \n  ")
	_, err := svc.Screen(context.Background(), ScreenRequest{
		JobDescription: "job",
		File:           file,
		FileHeader:     header,
	})
	assert.ErrorIs(t, err, screening.ErrUnreadableResume)
}

func TestScreenMissingFields(t *testing.T) {
	svc := NewScreeningService(&fakeSimilarityClient{})

	_, err := svc.Screen(context.Background(), ScreenRequest{})
	assert.Error(t, err)

	file, header := uploadOf("resume.txt", "text")
	_, err = svc.Screen(context.Background(), ScreenRequest{File: file, FileHeader: header})
	assert.Error(t, err, "job description is required")
}

func TestScreenUpstreamErrorSurfaces(t *testing.T) {
	upstream := errors.New("inference down")
	svc := NewScreeningService(&fakeSimilarityClient{err: upstream})

	file, header := uploadOf("resume.txt", "text")
	_, err := svc.Screen(context.Background(), ScreenRequest{
		JobDescription: "job",
		File:           file,
		FileHeader:     header,
	})
	assert.ErrorIs(t, err, upstream)
}
