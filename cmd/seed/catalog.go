package main

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/armeria-api/internal/application/dto"
	"github.com/jhoicas/armeria-api/internal/application/usecase"
	"github.com/jhoicas/armeria-api/internal/domain"
	"github.com/jhoicas/armeria-api/internal/domain/entity"
	"github.com/jhoicas/armeria-api/pkg/logger"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Items []catalogoItem `xml:"item"`
}

type catalogoItem struct {
	Nombre    string `xml:"nombre,attr"`
	Categoria string `xml:"categoria,attr"`
}

// resultado conteo de la carga.
type resultado struct {
	Creados    int
	Duplicados int
	Fallidos   int
}

// leerCatalogo decodifica el XML; acepta ISO-8859-1 además de UTF-8.
func leerCatalogo(r io.Reader) ([]catalogoItem, error) {
	var c catalogo
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		case "UTF-8", "":
			return input, nil
		}
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	return c.Items, nil
}

// cargar da de alta cada item del catálogo. Los duplicados no cuentan como fallo.
func cargar(ctx context.Context, uc *usecase.ItemUseCase, items []catalogoItem, log *logger.Logger) resultado {
	var res resultado
	for _, it := range items {
		_, err := uc.Add(ctx, dto.CreateItemRequest{
			Name:     it.Nombre,
			Category: entity.Category(strings.TrimSpace(it.Categoria)),
		})
		switch {
		case err == nil:
			res.Creados++
		case errors.Is(err, domain.ErrItemAlreadyExists):
			res.Duplicados++
			log.Debug().Str("name", it.Nombre).Msg("ya existe")
		default:
			res.Fallidos++
			log.Warn().Err(err).Str("name", it.Nombre).Str("category", it.Categoria).Msg("item rechazado")
		}
	}
	return res
}
