package initializr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Rana718/spring-helper/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

var ErrInvalidOption = errors.New("invalid option")

const DefaultFileName = "project.zip"

var supportedJavaVersions = []int{18, 17, 11}

type Options struct {
	PackageName string
	Packaging   string // jar | war
	JavaVersion int
	ProjectType string // maven | gradle
	FileName    string
}

// Query validates opts and returns the starter query parameters, plus any
// notices worth showing the operator.
func Query(opts Options, cfg config.Initializr) (map[string]string, []string, error) {
	var notices []string

	parts := strings.Split(opts.PackageName, ".")
	if len(parts) < 3 {
		return nil, nil, fmt.Errorf("%w: package name structure is too short, e.g. tw.mingchang.project", ErrInvalidOption)
	}
	for _, part := range parts {
		if part == "" {
			return nil, nil, fmt.Errorf("%w: package name %q has an empty segment", ErrInvalidOption, opts.PackageName)
		}
	}
	group := parts[0] + "." + parts[1]
	artifact := strings.Join(parts[2:], "-")
	if len(parts) > 3 {
		notices = append(notices, fmt.Sprintf("Package name has more than three parts: groupId is %q and the remaining parts are joined with \"-\" into artifactId %q.", group, artifact))
	}

	var projectType string
	switch opts.ProjectType {
	case "gradle":
		projectType = "gradle-project"
	case "maven":
		projectType = "maven-project"
	default:
		return nil, nil, fmt.Errorf("%w: invalid project type %q, use maven or gradle", ErrInvalidOption, opts.ProjectType)
	}

	packaging := strings.ToLower(opts.Packaging)
	if packaging != "jar" && packaging != "war" {
		return nil, nil, fmt.Errorf("%w: invalid package type %q, use JAR or WAR", ErrInvalidOption, opts.Packaging)
	}

	javaSupported := false
	for _, v := range supportedJavaVersions {
		if opts.JavaVersion == v {
			javaSupported = true
			break
		}
	}
	if !javaSupported {
		return nil, nil, fmt.Errorf("%w: invalid Java version %d, use one of %v", ErrInvalidOption, opts.JavaVersion, supportedJavaVersions)
	}

	params := map[string]string{
		"type":         projectType,
		"language":     "java",
		"bootVersion":  cfg.BootVersion,
		"baseDir":      artifact,
		"groupId":      group,
		"artifactId":   artifact,
		"name":         artifact,
		"description":  artifact,
		"packageName":  opts.PackageName,
		"packaging":    packaging,
		"javaVersion":  strconv.Itoa(opts.JavaVersion),
		"dependencies": strings.Join(cfg.Dependencies, ","),
	}
	return params, notices, nil
}

type Client struct {
	http *resty.Client
	fs   afero.Fs
	cfg  config.Initializr
	out  io.Writer
}

func NewClient(cfg config.Initializr, fs afero.Fs, out io.Writer) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{http: http, fs: fs, cfg: cfg, out: out}
}

// Download fetches the starter archive and writes it byte for byte.
func (c *Client) Download(ctx context.Context, opts Options) (string, error) {
	params, notices, err := Query(opts, c.cfg)
	if err != nil {
		return "", err
	}
	for _, notice := range notices {
		fmt.Fprintln(c.out, notice)
	}

	fileName := opts.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}

	fmt.Fprintln(c.out, "Downloading Spring project zip file from Spring Initializr.")
	fmt.Fprintln(c.out, "Please wait...")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/starter.zip")
	if err != nil {
		return "", fmt.Errorf("failed to download project: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to download project: initializr responded %s", resp.Status())
	}

	if err := afero.WriteFile(c.fs, fileName, resp.Body(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	return fileName, nil
}
