// Package common - Test hợp đồng lỗi NotFound và convert lỗi MongoDB.
package common

import (
	"errors"
	"strings"
	"testing"
)

func TestNewNotFoundError_MessageContainsId(t *testing.T) {
	err := NewNotFoundError("lead", "64f0c2a1b3d4e5f6a7b8c9d0")

	if !strings.Contains(err.Error(), "lead") {
		t.Errorf("message phải chứa tên entity, nhận được %q", err.Error())
	}
	if !strings.Contains(err.Error(), "64f0c2a1b3d4e5f6a7b8c9d0") {
		t.Errorf("message phải chứa id, nhận được %q", err.Error())
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatal("NewNotFoundError phải trả về *Error")
	}
	if customErr.StatusCode != StatusNotFound {
		t.Errorf("status code phải 404, nhận được %d", customErr.StatusCode)
	}
}

func TestNewNotFoundError_MatchesErrNotFound(t *testing.T) {
	// Biến thể mang id vẫn phải match sentinel qua errors.Is
	err := NewNotFoundError("interaction", "abc123")
	if !errors.Is(err, ErrNotFound) {
		t.Error("lỗi NotFound mang id phải match ErrNotFound qua errors.Is")
	}

	if errors.Is(ErrDuplicate, ErrNotFound) {
		t.Error("ErrDuplicate (409) không được match ErrNotFound")
	}
	if errors.Is(ErrInvalidInput, ErrNotFound) {
		t.Error("lỗi validation không được match ErrNotFound")
	}
}

func TestConvertMongoError_PreservesNotFound(t *testing.T) {
	err := NewNotFoundError("lead", "abc")
	converted := ConvertMongoError(err)

	if !errors.Is(converted, ErrNotFound) {
		t.Error("ConvertMongoError phải giữ nguyên lỗi NotFound")
	}
	if !strings.Contains(converted.Error(), "abc") {
		t.Errorf("id trong message phải được giữ lại sau convert, nhận được %q", converted.Error())
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("convert nil phải trả về nil, nhận được %v", got)
	}
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	converted := ConvertMongoError(errors.New("boom"))

	var customErr *Error
	if !errors.As(converted, &customErr) {
		t.Fatal("lỗi không xác định phải được bọc thành *Error")
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi không xác định phải là 500, nhận được %d", customErr.StatusCode)
	}
}
