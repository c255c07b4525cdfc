package remote

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	OpListProducts           = "listProducts"
	OpGetProduct             = "getProduct"
	OpCreateProduct          = "createProduct"
	OpUpdateProduct          = "updateProduct"
	OpDeleteProduct          = "deleteProduct"
	OpListProductsByCategory = "listProductsByCategory"
	OpListCategories         = "listCategories"
	OpListLowStock           = "listLowStock"
)

// Operation is one row of the data service wire contract. Paths are relative
// to the configured base URL.
type Operation struct {
	Name          string
	Method        string
	PathTemplate  string
	HasBody       bool
	SuccessStatus int
}

var contract = []Operation{
	{Name: OpListProducts, Method: http.MethodGet, PathTemplate: "/products", SuccessStatus: http.StatusOK},
	{Name: OpGetProduct, Method: http.MethodGet, PathTemplate: "/products/{id}", SuccessStatus: http.StatusOK},
	{Name: OpCreateProduct, Method: http.MethodPost, PathTemplate: "/products", HasBody: true, SuccessStatus: http.StatusCreated},
	{Name: OpUpdateProduct, Method: http.MethodPut, PathTemplate: "/products/{id}", HasBody: true, SuccessStatus: http.StatusOK},
	{Name: OpDeleteProduct, Method: http.MethodDelete, PathTemplate: "/products/{id}", SuccessStatus: http.StatusNoContent},
	{Name: OpListProductsByCategory, Method: http.MethodGet, PathTemplate: "/products/category/{name}", SuccessStatus: http.StatusOK},
	{Name: OpListCategories, Method: http.MethodGet, PathTemplate: "/categories", SuccessStatus: http.StatusOK},
	{Name: OpListLowStock, Method: http.MethodGet, PathTemplate: "/inventory/stock-low", SuccessStatus: http.StatusOK},
}

// Contract returns a copy of the wire contract in declaration order.
func Contract() []Operation {
	return append([]Operation(nil), contract...)
}

func Lookup(name string) (Operation, bool) {
	for _, op := range contract {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// Path expands the template placeholders. Values are path-escaped, so a
// category name containing a slash stays a single segment.
func (o Operation) Path(params map[string]string) (string, error) {
	path := o.PathTemplate
	for key, value := range params {
		placeholder := "{" + key + "}"
		if !strings.Contains(path, placeholder) {
			return "", fmt.Errorf("remote: %s has no %s placeholder", o.Name, placeholder)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
	}
	if strings.ContainsAny(path, "{}") {
		return "", fmt.Errorf("remote: %s path %q has unresolved placeholders", o.Name, path)
	}
	return path, nil
}
