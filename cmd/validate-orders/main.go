package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/tg_store/internal/domain"
	"github.com/Gunvolt24/tg_store/internal/notify"
	"github.com/Gunvolt24/tg_store/pkg/validate"
)

// CLI-приложение для валидации заказов витрины.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	preview := flag.Bool("preview", false, "print the Telegram notification text instead of JSON")
	recompute := flag.Bool("recompute", false, "recompute total from items and delivery in preview")
	flag.Parse()

	ctx := context.Background()
	orderValidator := validate.NewOrderValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	var render validate.Renderer
	if *preview {
		render = previewRenderer(*recompute)
	}

	summary, err := validate.ValidateFile(ctx, orderValidator, path, format, os.Stdout, render)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}

// previewRenderer — текст уведомления, как его увидит чат продавца.
func previewRenderer(recompute bool) validate.Renderer {
	return func(req *domain.OrderRequest) ([]byte, error) {
		order := req.Order(recompute)
		return []byte(notify.FormatOrder(&order)), nil
	}
}
