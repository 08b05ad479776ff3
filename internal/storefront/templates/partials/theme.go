package partials

// Gray scale shared with public/static/storefront.css.
const (
	gray700 = "hsl(220deg 5% 40%)"
	gray900 = "hsl(220deg 3% 20%)"
)
