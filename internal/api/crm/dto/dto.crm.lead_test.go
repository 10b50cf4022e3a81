// Package dto - Test validate dữ liệu đầu vào của lead.
package dto

import (
	"testing"

	"meta_crm/internal/global"
)

func validLeadCreateInput() *CrmLeadCreateInput {
	return &CrmLeadCreateInput{
		FirstName:  "An",
		LastName:   "Nguyen",
		Company:    "Acme",
		Email:      "an@acme.vn",
		LeadSource: "Website",
	}
}

func TestCrmLeadCreateInput_ValidInput(t *testing.T) {
	global.InitValidator()

	if err := global.Validate.Struct(validLeadCreateInput()); err != nil {
		t.Fatalf("input đầy đủ phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestCrmLeadCreateInput_RequiresEmailAndLeadSource(t *testing.T) {
	global.InitValidator()

	input := validLeadCreateInput()
	input.Email = ""
	input.LeadSource = ""
	if err := global.Validate.Struct(input); err == nil {
		t.Error("input thiếu email và leadSource phải bị từ chối, validator trả về nil")
	}
}

func TestCrmLeadCreateInput_RequiresEmail(t *testing.T) {
	global.InitValidator()

	input := validLeadCreateInput()
	input.Email = ""
	if err := global.Validate.Struct(input); err == nil {
		t.Error("input thiếu email phải bị từ chối")
	}

	input = validLeadCreateInput()
	input.Email = "không-phải-email"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("email sai định dạng phải bị từ chối")
	}
}

func TestCrmLeadCreateInput_RequiresLeadSource(t *testing.T) {
	global.InitValidator()

	input := validLeadCreateInput()
	input.LeadSource = ""
	if err := global.Validate.Struct(input); err == nil {
		t.Error("input thiếu leadSource phải bị từ chối")
	}
}

func TestCrmLeadCreateInput_DescriptionRejectsInjection(t *testing.T) {
	global.InitValidator()

	input := validLeadCreateInput()
	input.Description = "1; DROP TABLE leads --"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("description chứa mẫu SQL injection phải bị từ chối")
	}

	input = validLeadCreateInput()
	input.Description = "<script>alert(1)</script>"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("description chứa mẫu XSS phải bị từ chối")
	}

	input = validLeadCreateInput()
	input.Description = "Khách hàng tiềm năng từ hội chợ"
	if err := global.Validate.Struct(input); err != nil {
		t.Errorf("description bình thường phải hợp lệ, nhận lỗi: %v", err)
	}
}
