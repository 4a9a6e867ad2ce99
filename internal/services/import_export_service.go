package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	FormatExcel = "xlsx"
	FormatCSV   = "csv"

	exportSheetName = "Quiz"
)

// ImportExportService moves whole quizzes in and out of spreadsheet files.
// Imported rows go through the same validation as quizzes created over JSON.
type ImportExportService interface {
	ImportQuiz(ctx context.Context, reader io.Reader, filename, title, actor string) (*models.Quiz, error)
	ExportQuiz(ctx context.Context, id, format string) (*ExportFile, error)
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type importExportService struct {
	quizzes QuizService
	logger  *slog.Logger
}

func NewImportExportService(quizzes QuizService, logger *slog.Logger) ImportExportService {
	return &importExportService{
		quizzes: quizzes,
		logger:  logger,
	}
}

// ===== IMPORT OPERATIONS =====

func (s *importExportService) ImportQuiz(ctx context.Context, reader io.Reader, filename, title, actor string) (*models.Quiz, error) {
	s.logger.Info("Starting quiz import", "filename", filename, "actor", actor)

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		records, err = readCSV(reader)
	case ".xlsx":
		records, err = readExcel(reader)
	default:
		return nil, NewValidationError("file", "unsupported file format, use .xlsx or .csv", ext)
	}
	if err != nil {
		return nil, err
	}

	questions, rows, err := parseQuestionRows(records)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.Create(ctx, &models.QuizInput{Title: title, Questions: questions}, actor)
	if err != nil {
		return nil, toRowError(err, rows)
	}

	s.logger.Info("Quiz imported", "quiz_id", quiz.ID, "questions", len(quiz.Questions))
	return quiz, nil
}

func readCSV(reader io.Reader) ([][]string, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("failed to read CSV: %v", err), nil)
	}
	return records, nil
}

func readExcel(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("failed to read Excel file: %v", err), nil)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewValidationError("file", "Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, NewValidationError("file", fmt.Sprintf("failed to read sheet %s: %v", sheets[0], err), nil)
	}
	return rows, nil
}

// parseQuestionRows turns a header row plus data rows into question inputs.
// Blank rows are skipped. Option columns are read in column order. rows[i] is
// the 0-based data row, header excluded, that produced questions[i].
func parseQuestionRows(records [][]string) (questions []models.QuestionInput, rows []int, err error) {
	if len(records) < 2 {
		return nil, nil, NewValidationError("file", "file must have a header row and at least one question row", nil)
	}

	headerMap := make(map[string]int)
	var optionColumns []int
	for i, header := range records[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if name == "question" {
			name = "prompt"
		}
		if strings.HasPrefix(name, "option_") {
			optionColumns = append(optionColumns, i)
			continue
		}
		headerMap[name] = i
	}

	for _, col := range []string{"type", "prompt", "correct_answer"} {
		if _, exists := headerMap[col]; !exists {
			return nil, nil, NewValidationError("headers", fmt.Sprintf("missing required column: %s", col), col)
		}
	}

	for row, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}

		getColumn := func(index int) string {
			if index < len(record) {
				return record[index]
			}
			return ""
		}

		input := models.QuestionInput{
			Type:          strings.ToLower(strings.TrimSpace(getColumn(headerMap["type"]))),
			Prompt:        getColumn(headerMap["prompt"]),
			CorrectAnswer: getColumn(headerMap["correct_answer"]),
		}
		for _, col := range optionColumns {
			input.Options = append(input.Options, getColumn(col))
		}
		questions = append(questions, input)
		rows = append(rows, row)
	}
	return questions, rows, nil
}

// toRowError rewrites a question-bound validation error so it points at the
// spreadsheet row instead of the position among non-blank rows.
func toRowError(err error, rows []int) error {
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Index == nil || *ve.Index < 0 || *ve.Index >= len(rows) {
		return err
	}
	row := rows[*ve.Index]
	remapped := *ve
	remapped.Index = &row
	remapped.Field = fmt.Sprintf("rows[%d]", row) + strings.TrimPrefix(ve.Field, fmt.Sprintf("questions[%d]", *ve.Index))
	return &remapped
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ===== EXPORT OPERATIONS =====

func (s *importExportService) ExportQuiz(ctx context.Context, id, format string) (*ExportFile, error) {
	quiz, err := s.quizzes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows := questionRows(quiz)
	base := exportFilename(quiz)

	switch format {
	case "", FormatExcel:
		data, err := writeExcel(rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatCSV:
		data, err := writeCSV(rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    base + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		return nil, NewValidationError("format", "format must be xlsx or csv", format)
	}
}

func questionRows(quiz *models.Quiz) [][]string {
	maxOptions := 0
	for _, q := range quiz.Questions {
		maxOptions = max(maxOptions, len(q.Options()))
	}

	header := []string{"type", "prompt"}
	for i := 1; i <= maxOptions; i++ {
		header = append(header, "option_"+strconv.Itoa(i))
	}
	header = append(header, "correct_answer")

	rows := [][]string{header}
	for _, q := range quiz.Questions {
		row := make([]string, 0, len(header))
		row = append(row, string(q.Type()), q.Prompt)
		options := q.Options()
		for i := 0; i < maxOptions; i++ {
			if i < len(options) {
				row = append(row, options[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, q.CorrectAnswer())
		rows = append(rows, row)
	}
	return rows
}

func writeExcel(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name Excel sheet: %w", err)
	}

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func exportFilename(quiz *models.Quiz) string {
	var b strings.Builder
	for _, r := range strings.ToLower(quiz.Title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "quiz-" + quiz.ID
	}
	return name
}
