// Package crmvc - Test tổng hợp page visit và áp patch tương tác.
package crmvc

import (
	"strings"
	"testing"

	crmdto "meta_crm/internal/api/crm/dto"
	crmmodels "meta_crm/internal/api/crm/models"
)

func TestBuildPageVisitInput_Basic(t *testing.T) {
	now := int64(1_700_000_000_000)
	input := &crmdto.CrmLogVisitInput{
		UserId:  "user-1",
		PageUrl: "/pricing",
	}

	created := BuildPageVisitInput(input, now)

	if created.Type != crmmodels.InteractionTypePageVisit {
		t.Errorf("type phải là page_visit, nhận được %q", created.Type)
	}
	if created.DateTime != now {
		t.Errorf("dateTime phải là now, nhận được %d", created.DateTime)
	}
	if created.UserId != "user-1" {
		t.Errorf("userId phải được giữ lại, nhận được %q", created.UserId)
	}
	if !strings.Contains(created.Subject, "/pricing") {
		t.Errorf("subject phải chứa pageUrl, nhận được %q", created.Subject)
	}
	if !strings.Contains(created.Description, "/pricing") {
		t.Errorf("description phải chứa pageUrl, nhận được %q", created.Description)
	}
}

func TestBuildPageVisitInput_MetadataMerged(t *testing.T) {
	now := int64(1_700_000_123_456)
	input := &crmdto.CrmLogVisitInput{
		UserId:  "user-1",
		PageUrl: "/docs",
		Metadata: map[string]interface{}{
			"referrer": "google",
			"pageUrl":  "sẽ-bị-ghi-đè",
		},
	}

	created := BuildPageVisitInput(input, now)

	if created.Metadata["referrer"] != "google" {
		t.Errorf("metadata của caller phải được giữ lại, nhận được %v", created.Metadata)
	}
	if created.Metadata["pageUrl"] != "/docs" {
		t.Errorf("metadata.pageUrl phải bị hệ thống ghi đè, nhận được %v", created.Metadata["pageUrl"])
	}
	if created.Metadata["timestamp"] != now {
		t.Errorf("metadata.timestamp phải là now, nhận được %v", created.Metadata["timestamp"])
	}

	// Không mutate metadata gốc của caller
	if input.Metadata["pageUrl"] != "sẽ-bị-ghi-đè" {
		t.Error("metadata gốc của caller không được bị mutate")
	}
}

func TestBuildPageVisitInput_NilMetadata(t *testing.T) {
	created := BuildPageVisitInput(&crmdto.CrmLogVisitInput{UserId: "u", PageUrl: "/"}, 1)
	if created.Metadata == nil {
		t.Fatal("metadata phải luôn được khởi tạo")
	}
	if len(created.Metadata) != 2 {
		t.Errorf("metadata chỉ chứa pageUrl và timestamp, nhận được %v", created.Metadata)
	}
}

func TestApplyInteractionPatch_OnlyPresentFields(t *testing.T) {
	outcome := crmmodels.InteractionOutcomePositive
	duration := 30
	set := ApplyInteractionPatch(&crmdto.CrmInteractionUpdateInput{
		Outcome:         &outcome,
		DurationMinutes: &duration,
	})

	if len(set) != 2 {
		t.Errorf("$set chỉ chứa field có trong patch, nhận được %v", set)
	}
	if set["outcome"] != outcome {
		t.Errorf("$set thiếu outcome, nhận được %v", set)
	}
	if set["durationMinutes"] != duration {
		t.Errorf("$set thiếu durationMinutes, nhận được %v", set)
	}
}

func TestApplyInteractionPatch_Empty(t *testing.T) {
	set := ApplyInteractionPatch(&crmdto.CrmInteractionUpdateInput{})
	if len(set) != 0 {
		t.Errorf("patch rỗng không được sinh thay đổi, nhận được %v", set)
	}
}
