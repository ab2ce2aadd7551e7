package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/SalmanuRidwan/Trivia-API/internal/handler/helper"
	"github.com/SalmanuRidwan/Trivia-API/internal/middleware"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category ID", "Category", "Difficulty"}

// ExportQuestions выгружает все вопросы в CSV (по умолчанию) или XLSX
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		helper.AbortWithError(c, http.StatusBadRequest)
		return
	}

	rows, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, rows, filename)
	default:
		h.exportCSV(c, rows, filename)
	}
}

func exportRecord(r service.ExportRow) []string {
	return []string{
		strconv.FormatUint(uint64(r.Question.ID), 10),
		sanitizeForExcel(r.Question.Question),
		sanitizeForExcel(r.Question.Answer),
		strconv.FormatUint(uint64(r.Question.Category), 10),
		sanitizeForExcel(r.CategoryType),
		strconv.Itoa(r.Question.Difficulty),
	}
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, rows []service.ExportRow, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if err := writeCSV(c.Writer, rows); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи CSV (request_id=%s): %v", c.GetString(middleware.RequestIDKey), err)
	}
}

// writeCSV пишет BOM, заголовки и строки; останавливается на первой ошибке записи
func writeCSV(w io.Writer, rows []service.ExportRow) error {
	// BOM для корректного отображения UTF-8 в Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range rows {
		if err := writer.Write(exportRecord(r)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, rows []service.ExportRow, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		respondError(c, fmt.Errorf("failed to create stream writer: %w", err), http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, title := range exportHeaders {
		headers[i] = title
	}
	if err := sw.SetRow("A1", headers); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2) // строка 1 - заголовки
		row := []interface{}{
			r.Question.ID,
			sanitizeForExcel(r.Question.Question),
			sanitizeForExcel(r.Question.Answer),
			r.Question.Category,
			sanitizeForExcel(r.CategoryType),
			r.Question.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			respondError(c, fmt.Errorf("failed to write row %d: %w", i+2, err), http.StatusInternalServerError)
			return
		}
	}

	if err := sw.Flush(); err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
