package article

// Request 文章处理请求
type Request struct {
	Email      string `json:"email" validate:"required,email"`
	ArticleURL string `json:"article_url" validate:"required"`
}
