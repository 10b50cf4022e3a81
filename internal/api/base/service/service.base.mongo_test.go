// Package basesvc - Test default tag, UpdateData và bảo vệ dữ liệu system.
package basesvc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"meta_crm/internal/common"
)

type defaultTagModel struct {
	Status   string `bson:"status" default:"new"`
	Rating   string `bson:"rating" default:"warm"`
	IsActive bool   `bson:"isActive" default:"true"`
	Name     string `bson:"name"`
}

func TestApplyInsertDefaultsToModel_ZeroFieldsOnly(t *testing.T) {
	m := defaultTagModel{Status: "won", Name: "giữ nguyên"}
	applyInsertDefaultsToModel(&m)

	if m.Status != "won" {
		t.Errorf("field đã có giá trị không được ghi đè, status = %q", m.Status)
	}
	if m.Rating != "warm" {
		t.Errorf("field zero phải nhận default, rating = %q", m.Rating)
	}
	if !m.IsActive {
		t.Error("field bool zero phải nhận default true")
	}
	if m.Name != "giữ nguyên" {
		t.Errorf("field không có tag default phải giữ nguyên, name = %q", m.Name)
	}
}

func TestGetInsertDefaultsFromModelType_KeyedByBsonName(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	if len(defaults) != 3 {
		t.Fatalf("mong đợi 3 default, nhận được %v", defaults)
	}
	if defaults["status"] != "new" {
		t.Errorf("default của status phải là new, nhận được %v", defaults["status"])
	}
	if defaults["isActive"] != true {
		t.Errorf("default của isActive phải là bool true, nhận được %v (%T)", defaults["isActive"], defaults["isActive"])
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"status": "won"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update.Set["status"] != "won" {
		t.Errorf("map thường phải được wrap vào $set, nhận được %v", update.Set)
	}
	if len(update.Unset) != 0 {
		t.Errorf("không có $unset thì Unset phải rỗng, nhận được %v", update.Unset)
	}
}

func TestToUpdateData_PassThrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"rating": "hot"}}
	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if update != original {
		t.Error("*UpdateData phải được trả về nguyên trạng")
	}
}

type systemModel struct {
	IsSystem bool `bson:"isSystem"`
	Code     string
}

func TestValidateSystemDataInsert(t *testing.T) {
	ctx := context.Background()

	if err := validateSystemDataInsert(ctx, systemModel{IsSystem: false}); err != nil {
		t.Errorf("dữ liệu thường phải insert được, lỗi: %v", err)
	}

	err := validateSystemDataInsert(ctx, systemModel{IsSystem: true})
	if err == nil {
		t.Fatal("insert IsSystem = true ngoài init phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusConflict {
		t.Errorf("lỗi phải là conflict 409, nhận được %v", err)
	}

	// Context init được phép
	initCtx := WithSystemDataInsertAllowed(ctx)
	if err := validateSystemDataInsert(initCtx, systemModel{IsSystem: true}); err != nil {
		t.Errorf("context init phải được phép insert system data, lỗi: %v", err)
	}
}

func TestValidateSystemDataDelete(t *testing.T) {
	if err := validateSystemDataDelete(context.Background(), systemModel{IsSystem: true}); err == nil {
		t.Error("xóa dữ liệu system phải bị từ chối")
	}
	if err := validateSystemDataDelete(context.Background(), systemModel{IsSystem: false}); err != nil {
		t.Errorf("xóa dữ liệu thường phải được phép, lỗi: %v", err)
	}
}

func TestValidateSystemDataUpdate_StripIsSystem(t *testing.T) {
	update := &UpdateData{Set: map[string]interface{}{"code": "X", "isSystem": false}}
	if err := validateSystemDataUpdate(context.Background(), systemModel{IsSystem: false}, update); err != nil {
		t.Fatalf("update dữ liệu thường phải được phép, lỗi: %v", err)
	}
	if _, ok := update.Set["isSystem"]; ok {
		t.Error("isSystem phải bị strip khỏi $set")
	}

	// Set isSystem = true bị từ chối
	update = &UpdateData{Set: map[string]interface{}{"isSystem": true}}
	if err := validateSystemDataUpdate(context.Background(), systemModel{IsSystem: false}, update); err == nil {
		t.Error("set isSystem = true phải bị từ chối")
	}

	// Sửa bản ghi system ngoài init bị từ chối
	update = &UpdateData{Set: map[string]interface{}{"code": "Y"}}
	if err := validateSystemDataUpdate(context.Background(), systemModel{IsSystem: true}, update); err == nil {
		t.Error("sửa dữ liệu system ngoài init phải bị từ chối")
	}
}

func TestNormalizePagination_Clamps(t *testing.T) {
	page, limit, skip := normalizePagination(0, 0)
	if page != 1 || limit != 10 || skip != 0 {
		t.Errorf("page=0 limit=0 phải chuẩn hóa về 1/10/0, nhận được %d/%d/%d", page, limit, skip)
	}

	page, limit, skip = normalizePagination(-3, -5)
	if page != 1 || limit != 10 || skip != 0 {
		t.Errorf("giá trị âm phải chuẩn hóa về 1/10/0, nhận được %d/%d/%d", page, limit, skip)
	}

	page, limit, skip = normalizePagination(2, 5)
	if page != 2 || limit != 5 || skip != 5 {
		t.Errorf("page=2 limit=5 phải cho skip=5, nhận được %d/%d/%d", page, limit, skip)
	}
}

func TestNormalizePagination_SecondPageSlice(t *testing.T) {
	// 12 bản ghi đã xếp hạng theo thứ tự sort, trang 2 limit 5 phải lấy hạng 6..10
	ranked := make([]int, 12)
	for i := range ranked {
		ranked[i] = i + 1
	}

	_, limit, skip := normalizePagination(2, 5)
	end := skip + limit
	if end > int64(len(ranked)) {
		end = int64(len(ranked))
	}
	pageItems := ranked[skip:end]

	want := []int{6, 7, 8, 9, 10}
	if len(pageItems) != len(want) {
		t.Fatalf("trang 2 phải có %d bản ghi, nhận được %d", len(want), len(pageItems))
	}
	for i, rank := range want {
		if pageItems[i] != rank {
			t.Errorf("vị trí %d phải là hạng %d, nhận được %d", i, rank, pageItems[i])
		}
	}

	if total := int64(len(ranked)); total != 12 {
		t.Errorf("total phải đếm trước khi phân trang, nhận được %d", total)
	}
}

func TestComputeTotalPage(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 5, 2},
		{12, 5, 3},
	}
	for _, c := range cases {
		if got := computeTotalPage(c.total, c.limit); got != c.want {
			t.Errorf("computeTotalPage(%d, %d) = %d, muốn %d", c.total, c.limit, got, c.want)
		}
	}
}
