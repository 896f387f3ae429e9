package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/docling/pkg/docling"
	"github.com/adrianliechti/docling/pkg/extractor"
)

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "health":
		health, err := a.client.Health(ctx)

		if err != nil {
			return err
		}

		return printJSON(health)

	case "version":
		version, err := a.client.Version(ctx)

		if err != nil {
			return err
		}

		return printJSON(version)

	case "schema":
		return printJSON(docling.OptionsSchema())

	case "convert":
		return a.convert(ctx, args)

	case "submit":
		return a.submit(ctx, args)

	case "poll":
		if len(args) != 1 {
			return errors.New("poll expects a task id")
		}

		task, err := a.client.PollTask(ctx, args[0], a.wait)

		if err != nil {
			return err
		}

		return printJSON(task)

	case "result":
		if len(args) != 1 {
			return errors.New("result expects a task id")
		}

		result, err := a.client.TaskResult(ctx, args[0])

		if err != nil {
			return err
		}

		return a.printResult(result)

	case "wait":
		return a.waitFor(ctx, args)

	case "extract":
		return a.extract(ctx, args)
	}

	return fmt.Errorf("unknown command: %s", command)
}

func (a *app) convert(ctx context.Context, args []string) error {
	urls, paths, err := splitInputs(args)

	if err != nil {
		return err
	}

	var result *docling.ConvertResult

	if len(urls) > 0 {
		result, err = a.client.Convert(ctx, a.sourceRequest(urls))
	} else {
		result, err = a.client.ConvertFile(ctx, a.fileRequest(paths))
	}

	if err != nil {
		return err
	}

	return a.printResult(result)
}

func (a *app) submit(ctx context.Context, args []string) error {
	urls, paths, err := splitInputs(args)

	if err != nil {
		return err
	}

	var task *docling.Task

	if len(urls) > 0 {
		task, err = a.client.ConvertAsync(ctx, a.sourceRequest(urls))
	} else {
		task, err = a.client.ConvertFileAsync(ctx, a.fileRequest(paths))
	}

	if err != nil {
		return err
	}

	return printJSON(task)
}

func (a *app) waitFor(ctx context.Context, args []string) error {
	urls, paths, err := splitInputs(args)

	if err != nil {
		return err
	}

	options := a.config.Wait

	options.OnPoll = func(task docling.Task) {
		slog.Info("task status", "task", task.TaskID, "status", task.TaskStatus)
	}

	var result *docling.ConvertResult

	if len(urls) > 0 {
		result, err = a.client.WaitForConversion(ctx, a.sourceRequest(urls), &options)
	} else {
		result, err = a.client.WaitForFile(ctx, a.fileRequest(paths), &options)
	}

	if err != nil {
		return err
	}

	return a.printResult(result)
}

func (a *app) extract(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("extract expects a single file")
	}

	data, err := os.ReadFile(args[0])

	if err != nil {
		return err
	}

	e, err := a.config.Extractor(a.client)

	if err != nil {
		return err
	}

	format := extractor.Format(a.format)

	doc, err := e.Extract(ctx, extractor.File{
		Name: filepath.Base(args[0]),

		Content:     data,
		ContentType: mime.TypeByExtension(filepath.Ext(args[0])),
	}, &extractor.ExtractOptions{
		Format: &format,
	})

	if err != nil {
		return err
	}

	if a.json {
		return printJSON(doc)
	}

	fmt.Println(doc.Text)
	return nil
}

func (a *app) sourceRequest(urls []string) docling.ConvertRequest {
	var sources []docling.Source

	for _, u := range urls {
		sources = append(sources, docling.HTTPSource(u))
	}

	return docling.ConvertRequest{
		Sources: sources,
		Options: a.config.Options,
	}
}

func (a *app) fileRequest(paths []string) docling.FileRequest {
	return docling.FileRequest{
		Paths:   paths,
		Options: a.config.Options,
	}
}

// splitInputs separates URLs from local paths. Mixing both in one call is rejected.
func splitInputs(args []string) ([]string, []string, error) {
	if len(args) == 0 {
		return nil, nil, errors.New("missing input")
	}

	var urls []string
	var paths []string

	for _, arg := range args {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			urls = append(urls, arg)
		} else {
			paths = append(paths, arg)
		}
	}

	if len(urls) > 0 && len(paths) > 0 {
		return nil, nil, errors.New("cannot mix urls and files")
	}

	return urls, paths, nil
}
