// Package utility - Test chuyển đổi ObjectID và thao tác slice.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(ObjectID2String(id)); got != id {
		t.Errorf("round trip thất bại: %s != %s", got.Hex(), id.Hex())
	}
}

func TestString2ObjectID_Invalid(t *testing.T) {
	if got := String2ObjectID("không-phải-objectid"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải cho NilObjectID, nhận được %s", got.Hex())
	}
	if got := String2ObjectID(""); got != primitive.NilObjectID {
		t.Errorf("chuỗi rỗng phải cho NilObjectID, nhận được %s", got.Hex())
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("Contains không được tìm thấy phần tử vắng mặt")
	}
	if Contains(nil, "a") {
		t.Error("slice nil không chứa gì")
	}
}

func TestHasAnyOverlap(t *testing.T) {
	if !HasAnyOverlap([]string{"vip", "q3"}, []string{"q3"}) {
		t.Error("hai slice có phần tử chung phải overlap")
	}
	if HasAnyOverlap([]string{"vip"}, []string{"q3"}) {
		t.Error("hai slice rời nhau không được overlap")
	}
	if HasAnyOverlap([]string{}, []string{"a"}) {
		t.Error("slice rỗng không overlap với gì")
	}
}
