package shared

// NormalizePage 归一化页码，页大小由各列表接口固定。
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
