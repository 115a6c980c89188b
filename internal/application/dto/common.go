package dto

// PageRequest は一覧取得のページング。
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage は Limit/Offset が未指定のときにデフォルト値を入れる。
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse はレスポンスに含めるページ情報。
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse は HTTP エラーのボディ。
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
