package handler

import "net/http"

// Серверные страницы-заглушки: сама админка живёт в /api, здесь только
// точки входа для браузера
const employeesViewHTML = `<!DOCTYPE html>
<html>
<head><title>Employees</title></head>
<body>
<h1>Employees</h1>
<p>Employee administration. Data is served from /api/employees.</p>
</body>
</html>
`

const departmentsViewHTML = `<!DOCTYPE html>
<html>
<head><title>Departments</title></head>
<body>
<h1>Departments</h1>
<p>Department administration. Data is served from /api/departments.</p>
</body>
</html>
`

func (r *Router) employeesView(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	serveView(w, employeesViewHTML)
}

func (r *Router) departmentsView(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	serveView(w, departmentsViewHTML)
}

func serveView(w http.ResponseWriter, html string) {
	// Переопределяем Content-Type, выставленный middleware для JSON
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
