package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/cloudstore/internal/models"
	pkgapi "github.com/iudanet/cloudstore/pkg/api"
)

// ListRecords возвращает все записи владельца токена в порядке сервера
func (c *Client) ListRecords(ctx context.Context, token string) ([]models.DataRecord, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var resp pkgapi.RecordListResponse
	err := c.doRequest(ctx, request{
		op:     opListRecords,
		method: http.MethodGet,
		url:    c.dataURL,
		token:  token,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetRecord возвращает запись по id
func (c *Client) GetRecord(ctx context.Context, token string, id int64) (*models.DataRecord, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	recordURL, err := c.recordURL(id)
	if err != nil {
		return nil, err
	}

	var record models.DataRecord
	err = c.doRequest(ctx, request{
		op:     opGetRecord,
		method: http.MethodGet,
		url:    recordURL,
		token:  token,
		result: &record,
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateRecord создает новую запись
func (c *Client) CreateRecord(ctx context.Context, token string, req pkgapi.CreateRecordRequest) (*models.DataRecord, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var record models.DataRecord
	err := c.doRequest(ctx, request{
		op:     opCreateRecord,
		method: http.MethodPost,
		url:    c.dataURL,
		token:  token,
		body:   req,
		result: &record,
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord заменяет value существующей записи
func (c *Client) UpdateRecord(ctx context.Context, token string, req pkgapi.UpdateRecordRequest) (*models.DataRecord, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	var record models.DataRecord
	err := c.doRequest(ctx, request{
		op:     opUpdateRecord,
		method: http.MethodPut,
		url:    c.dataURL,
		token:  token,
		body:   req,
		result: &record,
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteRecord удаляет запись по id. Тело ответа игнорируется.
func (c *Client) DeleteRecord(ctx context.Context, token string, id int64) error {
	if err := requireToken(token); err != nil {
		return err
	}

	recordURL, err := c.recordURL(id)
	if err != nil {
		return err
	}

	return c.doRequest(ctx, request{
		op:     opDeleteRecord,
		method: http.MethodDelete,
		url:    recordURL,
		token:  token,
	})
}

// recordURL добавляет ?id=<id> к адресу data endpoint
func (c *Client) recordURL(id int64) (string, error) {
	u, err := url.Parse(c.dataURL)
	if err != nil {
		return "", fmt.Errorf("invalid data URL: %w", err)
	}
	q := u.Query()
	q.Set("id", strconv.FormatInt(id, 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
