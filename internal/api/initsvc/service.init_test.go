// Package initsvc - Test định nghĩa dữ liệu tham chiếu mặc định.
package initsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialLeadSources_Definitions(t *testing.T) {
	require.Len(t, InitialLeadSources, 8)

	seen := map[string]bool{}
	for i, src := range InitialLeadSources {
		assert.NotEmpty(t, src.Code, "source thứ %d thiếu code", i)
		assert.NotEmpty(t, src.Name, "source %s thiếu name", src.Code)
		assert.False(t, seen[src.Code], "code %s bị trùng", src.Code)
		seen[src.Code] = true
		assert.Equal(t, i+1, src.SortOrder, "sortOrder của %s phải theo thứ tự khai báo", src.Code)
	}

	for _, code := range []string{"WEBSITE", "REFERRAL", "COLD_CALL", "TRADE_SHOW", "SOCIAL", "EMAIL", "PARTNER", "ADVERTISEMENT"} {
		assert.True(t, seen[code], "thiếu nguồn lead %s", code)
	}
}

func TestInitialLeadStatuses_Definitions(t *testing.T) {
	require.Len(t, InitialLeadStatuses, 7)

	byCode := map[string]int{}
	for i, st := range InitialLeadStatuses {
		require.NotEmpty(t, st.Code, "status thứ %d thiếu code", i)
		_, dup := byCode[st.Code]
		require.False(t, dup, "code %s bị trùng", st.Code)
		byCode[st.Code] = i
	}

	won := InitialLeadStatuses[byCode["WON"]]
	assert.True(t, won.IsWon, "WON phải có isWon")
	assert.True(t, won.IsFinal, "WON phải là trạng thái cuối")
	assert.False(t, won.IsLost)

	lost := InitialLeadStatuses[byCode["LOST"]]
	assert.True(t, lost.IsLost, "LOST phải có isLost")
	assert.True(t, lost.IsFinal, "LOST phải là trạng thái cuối")
	assert.False(t, lost.IsWon)

	// Các trạng thái trung gian không được đánh dấu cuối
	for _, code := range []string{"NEW", "CONTACTED", "QUALIFIED", "PROPOSAL", "NEGOTIATION"} {
		st := InitialLeadStatuses[byCode[code]]
		assert.False(t, st.IsFinal, "%s không phải trạng thái cuối", code)
		assert.False(t, st.IsWon)
		assert.False(t, st.IsLost)
	}
}

func TestMissingSeedCodes_InsertIfAbsent(t *testing.T) {
	defs := []string{"WEBSITE", "REFERRAL", "SOCIAL"}

	missing := missingSeedCodes(defs, []string{"REFERRAL"})
	assert.Equal(t, []string{"WEBSITE", "SOCIAL"}, missing, "chỉ các code chưa tồn tại mới được insert")

	missing = missingSeedCodes(defs, []string{})
	assert.Equal(t, defs, missing, "danh mục trống phải insert toàn bộ định nghĩa")
}

func TestMissingSeedCodes_SecondRunInsertsNothing(t *testing.T) {
	defCodes := make([]string, 0, len(InitialLeadSources))
	for _, src := range InitialLeadSources {
		defCodes = append(defCodes, src.Code)
	}

	// Lần chạy thứ hai: toàn bộ code đã có, không insert gì thêm
	assert.Empty(t, missingSeedCodes(defCodes, defCodes))

	statusCodes := make([]string, 0, len(InitialLeadStatuses))
	for _, st := range InitialLeadStatuses {
		statusCodes = append(statusCodes, st.Code)
	}
	assert.Empty(t, missingSeedCodes(statusCodes, statusCodes))
}
