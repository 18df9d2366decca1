package handler

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gopkg.in/yaml.v3"
)

// Docs routes.
const (
	DocsJSONPath  = "/api-docs/openapi.json"
	DocsYAMLPath  = "/api-docs/openapi.yaml"
	DocsUIPrefix  = "/api-docs/ui"
	docsIndexPage = DocsUIPrefix + "/index.html"
)

// DocsHandler serves the OpenAPI description and the bundled Swagger UI.
type DocsHandler struct {
	doc *openapi3.T
	ui  gin.HandlerFunc
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(doc *openapi3.T) *DocsHandler {
	return &DocsHandler{
		doc: doc,
		ui: ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.URL(DocsJSONPath),
			ginSwagger.DeepLinking(false),
		),
	}
}

// Index handles GET /api-docs
func (h *DocsHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, docsIndexPage)
}

// UI handles GET /api-docs/ui/*any
func (h *DocsHandler) UI(c *gin.Context) {
	h.ui(c)
}

// JSON handles GET /api-docs/openapi.json
func (h *DocsHandler) JSON(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.doc)
}

// YAML handles GET /api-docs/openapi.yaml
func (h *DocsHandler) YAML(c *gin.Context) {
	out, err := yaml.Marshal(h.doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/yaml", out)
}
