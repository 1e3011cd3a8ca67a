package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weather-query-api/internal/domain/apperror"
	"weather-query-api/internal/domain/entity"
	"weather-query-api/internal/domain/gateway/db"
	"weather-query-api/internal/domain/model"
	"weather-query-api/pkg/msg"
)

const (
	contentTypeJSON     = "application/json; charset=utf-8"
	contentTypeCSV      = "text/csv; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

var csvHeader = []string{"id", "location", "latitude", "longitude", "start_date", "end_date", "summary", "created_at"}

type exportUseCase struct {
	dbGateway db.QueryGateway
}

func NewExportUseCase(dbGateway db.QueryGateway) UseCase {
	return &exportUseCase{
		dbGateway: dbGateway,
	}
}

func (uc *exportUseCase) Export(ctx context.Context, format string) (*model.ExportDocument, error) {
	exportFormat := model.ExportFormat(strings.ToLower(strings.TrimSpace(format)))
	switch exportFormat {
	case model.ExportJSON, model.ExportCSV, model.ExportMarkdown:
	default:
		return nil, apperror.Validation(msg.GetMessage("export.error.format"))
	}

	queries, err := uc.dbGateway.FindAll(ctx, model.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("failed to load queries for export: %w", err)
	}

	switch exportFormat {
	case model.ExportCSV:
		return renderCSV(queries)
	case model.ExportMarkdown:
		return renderMarkdown(queries), nil
	default:
		return renderJSON(queries)
	}
}

func renderJSON(queries []entity.WeatherQuery) (*model.ExportDocument, error) {
	response := model.ExportResponse{Items: make([]model.ExportItem, 0, len(queries))}
	for _, query := range queries {
		response.Items = append(response.Items, model.ExportItem{
			ID:        query.ID,
			Location:  query.Location,
			Latitude:  query.Latitude,
			Longitude: query.Longitude,
			StartDate: query.StartDate,
			EndDate:   query.EndDate,
			Summary:   query.Summary,
			CreatedAt: query.CreatedAt,
		})
	}

	body, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return &model.ExportDocument{ContentType: contentTypeJSON, Body: body}, nil
}

func renderCSV(queries []entity.WeatherQuery) (*model.ExportDocument, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, query := range queries {
		record := []string{
			strconv.FormatInt(query.ID, 10),
			query.Location,
			strconv.FormatFloat(query.Latitude, 'f', -1, 64),
			strconv.FormatFloat(query.Longitude, 'f', -1, 64),
			query.StartDate,
			query.EndDate,
			query.Summary,
			query.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return &model.ExportDocument{ContentType: contentTypeCSV, Body: buffer.Bytes()}, nil
}

func renderMarkdown(queries []entity.WeatherQuery) *model.ExportDocument {
	var builder strings.Builder
	builder.WriteString("| id | location | start_date | end_date | summary |\n")
	builder.WriteString("|---|---|---|---|---|\n")

	for _, query := range queries {
		fmt.Fprintf(&builder, "| %d | %s | %s | %s | %s |\n",
			query.ID,
			markdownCell(query.Location),
			markdownCell(query.StartDate),
			markdownCell(query.EndDate),
			markdownCell(query.Summary))
	}
	return &model.ExportDocument{ContentType: contentTypeMarkdown, Body: []byte(builder.String())}
}

// markdownCell keeps a value inside its table cell
func markdownCell(value string) string {
	value = strings.ReplaceAll(value, "|", `\|`)
	value = strings.ReplaceAll(value, "\r\n", " ")
	return strings.ReplaceAll(value, "\n", " ")
}
