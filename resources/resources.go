// Package resources 内嵌的页面模板
package resources

import (
	"embed"
	"html/template"
	"time"
)

//go:embed views/*.html
var views embed.FS

// Templates 解析全部页面模板，模板名为文件名，如 "index.html"
func Templates() *template.Template {
	funcs := template.FuncMap{
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(views, "views/*.html"))
}
