package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/bodgit/nds/catalog"
	"github.com/bodgit/nds/hardware"
	"github.com/bodgit/nds/nds"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	return table
}

func hex(v interface{}) string {
	return fmt.Sprintf("0x%x", v)
}

func options(c *cli.Context) []nds.Option {
	var opts []nds.Option

	if c.Bool("strict") {
		opts = append(opts, nds.WithStrictText())
	}

	if c.Bool("verbose") {
		opts = append(opts, nds.WithDiagnostic(func(f nds.Field, v interface{}) {
			log.Printf("%s: %v", f.Name, v)
		}))
	}

	return opts
}

func readHeader(c *cli.Context) (*nds.Header, error) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	return nds.ReadFile(c.Args().First(), options(c)...)
}

func info(c *cli.Context) error {
	h, err := readHeader(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	table := newTable()

	table.Append([]string{"Title:", h.Title()})
	table.Append([]string{"Code:", h.Code()})
	table.Append([]string{"Maker:", h.Maker()})
	table.Append([]string{"Unit:", hardware.Unit(h.UnitCode).String()})
	table.Append([]string{"Region:", hardware.Region(h.RegionCode).String()})
	table.Append([]string{"Capacity:", strconv.FormatUint(hardware.Capacity(h.DeviceCapacity), 10)})
	table.Append([]string{"Version:", strconv.FormatUint(uint64(h.Version), 10)})
	table.Append([]string{"Total size:", strconv.FormatUint(uint64(h.TotalSize), 10)})
	table.Append([]string{"Header size:", strconv.FormatUint(uint64(h.HeaderSize), 10)})
	table.Append([]string{"Logo CRC:", hex(h.NintendoLogoCRC)})
	table.Append([]string{"Header CRC:", hex(h.HeaderCRC)})

	table.Render()

	fmt.Println()

	table = tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")

	table.SetHeader([]string{"Binary", "Offset", "Entry", "Load", "Length"})
	for _, b := range []struct {
		name string
		nds.Binary
	}{
		{"ARM9", h.ARM9},
		{"ARM7", h.ARM7},
	} {
		table.Append([]string{b.name, hex(b.Offset), hex(b.Entry), hex(b.Load), hex(b.Length)})
	}

	table.Render()

	return nil
}

func fields(c *cli.Context) error {
	var rows [][]string

	opts := append(options(c), nds.WithDiagnostic(func(f nds.Field, v interface{}) {
		value := fmt.Sprintf("%v", v)
		switch f.Kind {
		case nds.Text:
			value = strconv.Quote(v.(string))
		case nds.Bytes:
			value = fmt.Sprintf("%x", v)
		}
		rows = append(rows, []string{f.Name, hex(f.Offset), f.Kind.String(), value})
	}))

	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	if _, err := nds.ReadFile(c.Args().First(), opts...); err != nil {
		return cli.NewExitError(err, 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")

	table.SetHeader([]string{"Field", "Offset", "Kind", "Value"})
	table.AppendBulk(rows)
	table.Render()

	return nil
}

func openCatalog(c *cli.Context) (*catalog.Catalog, error) {
	return catalog.NewCatalog(c.String("database"))
}

func add(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	db, err := openCatalog(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	for _, path := range c.Args().Slice() {
		h, err := nds.ReadFile(path, options(c)...)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if _, err := db.Add(h); err != nil {
			return cli.NewExitError(err, 1)
		}

		log.Printf("added %s", h)
	}

	return nil
}

func entryRow(e catalog.Entry, _ int) []string {
	return []string{
		e.Code,
		strconv.FormatUint(uint64(e.Version), 10),
		e.Title,
		e.Maker,
		hardware.Unit(e.Unit).String(),
		hardware.Region(e.Region).String(),
		strconv.FormatUint(hardware.Capacity(e.Capacity), 10),
		hex(e.HeaderCRC),
	}
}

func lookup(c *cli.Context) error {
	db, err := openCatalog(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	var entries []catalog.Entry
	if c.NArg() > 0 {
		entries, err = db.FindByCode(c.Args().First())
	} else {
		entries, err = db.List()
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")

	table.SetHeader([]string{"Code", "Version", "Title", "Maker", "Unit", "Region", "Capacity", "Header CRC"})
	table.AppendBulk(lo.Map(entries, entryRow))
	table.Render()

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "ndsinfo"
	app.Usage = "Nintendo DS image header utility"
	app.Version = "1.0.0"

	strict := &cli.BoolFlag{
		Name:  "strict",
		Usage: "reject text fields that are not printable ASCII",
	}

	verbose := &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log each field as it is decoded",
	}

	database := &cli.StringFlag{
		Name:    "database",
		Aliases: []string{"d"},
		Usage:   "catalog database `FILE`",
		Value:   "nds.db",
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Info on a " + nds.Extension + " file",
			Description: "",
			Action:      info,
			Flags:       []cli.Flag{strict, verbose},
		},
		{
			Name:        "fields",
			Usage:       "List every header field of a " + nds.Extension + " file",
			Description: "",
			Action:      fields,
			Flags:       []cli.Flag{strict},
		},
		{
			Name:        "add",
			Usage:       "Add " + nds.Extension + " files to the catalog",
			Description: "",
			Action:      add,
			Flags:       []cli.Flag{database, strict, verbose},
		},
		{
			Name:        "lookup",
			Usage:       "Search the catalog by game code",
			Description: "",
			Action:      lookup,
			Flags:       []cli.Flag{database},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
