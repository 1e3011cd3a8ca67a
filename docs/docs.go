// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Always answers while the process serves requests, with the database status attached",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/weather/current": {
            "get": {
                "description": "Geocodes the location and returns today's weather from the provider",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Current weather for a place name",
                "parameters": [
                    {"type": "string", "description": "Free-text place name", "name": "location", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CurrentWeatherResponse"}},
                    "400": {"description": "Missing location", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Location not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/weather/current-by-coords": {
            "get": {
                "description": "Returns today's weather for a latitude/longitude pair without geocoding",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Current weather for coordinates",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CurrentWeatherResponse"}},
                    "400": {"description": "Invalid coordinates", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/queries": {
            "get": {
                "description": "Newest first",
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List saved weather queries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.WeatherQuery"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Validates the date range, geocodes the location, fetches weather for the range and stores the record",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Save a weather query",
                "parameters": [
                    {"description": "Location and date range", "name": "query", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateQueryDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.WeatherQuery"}},
                    "400": {"description": "Invalid body or dates", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Location not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/queries/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Get a saved weather query",
                "parameters": [
                    {"type": "integer", "description": "Query id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.WeatherQuery"}},
                    "400": {"description": "Invalid id", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Record not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "description": "Omitted fields keep their stored value; coordinates and summary are always refreshed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Update a saved weather query",
                "parameters": [
                    {"type": "integer", "description": "Query id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "query", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UpdateQueryDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.WeatherQuery"}},
                    "400": {"description": "Invalid id, body or dates", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Record or location not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Provider failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Delete a saved weather query",
                "parameters": [
                    {"type": "integer", "description": "Query id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DeleteQueryResponse"}},
                    "400": {"description": "Invalid id", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Record not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/export/{format}": {
            "get": {
                "description": "All records in ascending id order as json, csv or md",
                "produces": ["application/json", "text/csv", "text/markdown"],
                "tags": ["export"],
                "summary": "Export saved weather queries",
                "parameters": [
                    {"enum": ["json", "csv", "md"], "type": "string", "description": "Export format", "name": "format", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ExportResponse"}},
                    "400": {"description": "Unsupported format", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrations/maps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["integrations"],
                "summary": "Google Maps search link",
                "parameters": [
                    {"type": "string", "description": "Place name", "name": "location", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MapLinkResponse"}}
                }
            }
        },
        "/integrations/youtube": {
            "get": {
                "produces": ["application/json"],
                "tags": ["integrations"],
                "summary": "YouTube travel guide search link",
                "parameters": [
                    {"type": "string", "description": "Place name", "name": "location", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.VideoLinkResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entity.WeatherQuery": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "start_date": {"type": "string", "example": "2024-01-01"},
                "end_date": {"type": "string", "example": "2024-01-02"},
                "summary": {"type": "string", "example": "Temp: 7.0°C, Wind: 11.3 km/h"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "model.CreateQueryDTO": {
            "type": "object",
            "required": ["location", "start_date", "end_date"],
            "properties": {
                "location": {"type": "string", "minLength": 2},
                "start_date": {"type": "string", "example": "2024-01-01"},
                "end_date": {"type": "string", "example": "2024-01-02"}
            }
        },
        "model.UpdateQueryDTO": {
            "type": "object",
            "properties": {
                "location": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            }
        },
        "model.DeleteQueryResponse": {
            "type": "object",
            "properties": {"deleted": {"type": "boolean"}}
        },
        "model.ExportItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "summary": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "model.ExportResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.ExportItem"}}
            }
        },
        "model.CurrentWeatherResponse": {
            "type": "object",
            "properties": {
                "location": {"type": "object"},
                "weather": {"type": "object", "additionalProperties": true}
            }
        },
        "model.MapLinkResponse": {
            "type": "object",
            "properties": {"maps_url": {"type": "string"}}
        },
        "model.VideoLinkResponse": {
            "type": "object",
            "properties": {"youtube_url": {"type": "string"}}
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN"]},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "status": {"type": "string", "enum": ["UP", "DOWN"]},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Weather Query API",
	Description:      "Geocoded weather lookups with saved queries, exports and search links.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
