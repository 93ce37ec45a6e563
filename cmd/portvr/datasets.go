package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/dashboard"
)

func newDatasetsCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the exportable datasets",
		Long: `List the exportable datasets with their record count and default file
name. With --search, the count is the number of entries an export with the
same search would hold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := dashboard.Filter{Search: search}
			list := datasetList{}
			for _, name := range dashboard.Names() {
				ds, err := dashboard.Lookup(name)
				if err != nil {
					return cli.NewCommandError("datasets", err)
				}
				records, err := dashboard.Records(name, filter)
				if err != nil {
					return cli.NewCommandError("datasets", err)
				}
				list = append(list, datasetView{
					Name:        ds.Name,
					Records:     len(records),
					Filename:    ds.Filename,
					DateFilter:  ds.Dated(),
					Description: ds.Description,
				})
			}
			return a.print(cmd, list)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "count only entries matching this text")
	return cmd
}

type datasetView struct {
	Name        string `json:"name"`
	Records     int    `json:"records"`
	Filename    string `json:"filename"`
	DateFilter  bool   `json:"dateFilter"`
	Description string `json:"description"`
}

type datasetList []datasetView

func (l datasetList) Headers() []string {
	return []string{"NAME", "RECORDS", "FILENAME", "DATE FILTER", "DESCRIPTION"}
}

func (l datasetList) Rows() [][]string {
	rows := make([][]string, len(l))
	for i, d := range l {
		dated := "no"
		if d.DateFilter {
			dated = "yes"
		}
		rows[i] = []string{d.Name, strconv.Itoa(d.Records), d.Filename, dated, d.Description}
	}
	return rows
}
