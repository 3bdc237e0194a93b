package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli"

	"github.com/s3sign/s3sign"
	"github.com/s3sign/s3sign/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "signurl"
	app.Usage = "Prints public or presigned GET URLs for objects in an S3-compatible bucket, one per line"
	app.ArgsUsage = "key [key...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "bucket",
			Usage: "bucket name",
		},
		cli.StringFlag{
			Name:   "region",
			Usage:  "aws region",
			EnvVar: "AWS_REGION",
		},
		cli.StringFlag{
			Name:   "awsKeyId",
			Usage:  "aws access key id for user",
			EnvVar: "AWS_ACCESS_KEY_ID",
		},
		cli.StringFlag{
			Name:   "awsSecretKey",
			Usage:  "aws secret key for user",
			EnvVar: "AWS_SECRET_ACCESS_KEY",
		},
		cli.StringFlag{
			Name:   "awsSessionToken",
			Usage:  "aws session token",
			EnvVar: "AWS_SESSION_TOKEN",
		},
		cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3-compatible endpoint URL, ie a MinIO instance",
		},
		cli.StringFlag{
			Name:  "host",
			Usage: "pin the bucket address to this host verbatim",
		},
		cli.BoolFlag{
			Name:  "public",
			Usage: "print unsigned public URLs instead of presigned ones",
		},
		cli.DurationFlag{
			Name:  "expires-in",
			Usage: "presign lifetime, at most 168h",
			Value: s3sign.DefaultExpiry,
		},
		cli.StringFlag{
			Name:  "response-content-type",
			Usage: "override the Content-Type of the GET response",
		},
		cli.StringFlag{
			Name:  "response-expires",
			Usage: "override the Expires of the GET response (HTTP date, RFC 3339, or epoch seconds)",
		},
		cli.StringFlag{
			Name:  "version-id",
			Usage: "address a specific object version",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("signurl requires at least one object key argument")
	}

	signer, err := newSigner(c)
	if err != nil {
		return err
	}

	opts, err := presignOptions(c)
	if err != nil {
		return err
	}

	for _, key := range c.Args() {
		u, err := signer.URL(key, opts...)
		if err != nil {
			return err
		}
		fmt.Println(u)
	}
	return nil
}

func newSigner(c *cli.Context) (*s3sign.Signer, error) {
	opts := []s3sign.Option{s3sign.WithSigningKeyCache()}
	if host := c.String("host"); host != "" {
		opts = append(opts, s3sign.WithHost(host))
	}
	if endpoint := c.String("endpoint"); endpoint != "" {
		opts = append(opts, s3sign.WithEndpoint(endpoint))
	}
	if !c.Bool("public") {
		opts = append(opts, s3sign.WithDefaultPresigned())
	}

	return s3sign.NewSigner(c.String("bucket"), c.String("region"), aws.Credentials{
		AccessKeyID:     c.String("awsKeyId"),
		SecretAccessKey: c.String("awsSecretKey"),
		SessionToken:    c.String("awsSessionToken"),
	}, opts...)
}

func presignOptions(c *cli.Context) ([]s3sign.PresignOption, error) {
	opts := []s3sign.PresignOption{s3sign.ExpiresIn(c.Duration("expires-in"))}
	if ct := c.String("response-content-type"); ct != "" {
		opts = append(opts, s3sign.ResponseContentType(ct))
	}
	if exp := c.String("response-expires"); exp != "" {
		t, err := utils.ParseHTTPDate(exp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, s3sign.ResponseExpires(t))
	}
	if v := c.String("version-id"); v != "" {
		opts = append(opts, s3sign.VersionID(v))
	}
	return opts, nil
}
