package tabular

import (
	"testing"

	"github.com/Station-Manager/tabular/converters"
	"github.com/Station-Manager/tabular/dataset"
	"github.com/Station-Manager/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestSuite struct {
	suite.Suite
	qsos []types.Qso
}

func TestRealworld(T *testing.T) {
	suite.Run(T, new(TestSuite))
}

func (suite *TestSuite) SetupTest() {
	suite.qsos = []types.Qso{
		{
			QsoDetails: types.QsoDetails{
				Band:    "20m",
				Freq:    "14.320",
				Mode:    "SSB",
				QsoDate: "20251107",
				RstRcvd: "59",
				RstSent: "57",
				TimeOn:  "1200",
				TimeOff: "1205",
			},
			ContactedStation: types.ContactedStation{
				Call:    "M0CMC",
				Cont:    "EU",
				Country: "England",
				Name:    "Marc",
			},
			LoggingStation: types.LoggingStation{
				MyAntenna:       "Hex Beam",
				MyCity:          "Mzuzu",
				MyCountry:       "Malawi",
				StationCallsign: "7Q5MLV",
			},
		},
		{
			QsoDetails: types.QsoDetails{
				Band:    "40m",
				Freq:    "7.074",
				Mode:    "FT8",
				QsoDate: "2025-11-08",
				TimeOn:  "21:15",
			},
			ContactedStation: types.ContactedStation{Call: "G4ABC"},
			LoggingStation:   types.LoggingStation{StationCallsign: "7Q5MLV"},
		},
	}
}

func (suite *TestSuite) cell(table *dataset.DataTable, row int, column string) string {
	r, err := table.Row(row)
	require.NoError(suite.T(), err)
	v, err := r.Get(column)
	require.NoError(suite.T(), err)
	return v
}

func (suite *TestSuite) TestTabulateQsoLog() {
	adapter := New()
	adapter.RegisterConverter("QsoDate", converters.DateText)
	adapter.RegisterConverter("TimeOn", converters.TimeText)

	table, err := Tabulate(adapter, "", suite.qsos)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Qso", table.Name())
	require.Equal(suite.T(), 2, table.RowCount())

	columns := table.ColumnNames()
	for _, c := range []string{"Band", "Freq", "Mode", "QsoDate", "TimeOn", "Call", "Country", "StationCallsign"} {
		require.Contains(suite.T(), columns, c)
	}

	require.Equal(suite.T(), "20m", suite.cell(table, 0, "Band"))
	require.Equal(suite.T(), "M0CMC", suite.cell(table, 0, "Call"))
	require.Equal(suite.T(), "England", suite.cell(table, 0, "Country"))
	require.Equal(suite.T(), "2025-11-07", suite.cell(table, 0, "QsoDate"))
	require.Equal(suite.T(), "12:00", suite.cell(table, 0, "TimeOn"))
	require.Equal(suite.T(), "2025-11-08", suite.cell(table, 1, "QsoDate"))
	require.Equal(suite.T(), "21:15", suite.cell(table, 1, "TimeOn"))
	require.Equal(suite.T(), "7Q5MLV", suite.cell(table, 1, "StationCallsign"))
}

func (suite *TestSuite) TestQsoLogIntoDataSet() {
	adapter := New()
	ds := dataset.NewDataSet("station")

	require.NoError(suite.T(), FillDataSetOf(adapter, ds, suite.qsos))
	require.NoError(suite.T(), adapter.FillDataSet(ds, &suite.qsos[0]))

	table, ok := ds.Table("Qso")
	require.True(suite.T(), ok)
	require.Equal(suite.T(), 3, table.RowCount())
	require.Equal(suite.T(), "M0CMC", suite.cell(table, 2, "Call"))
}

func (suite *TestSuite) TestQsoRecordsUseJSONNames() {
	records, err := Records(suite.qsos)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), records, 2)

	table := dataset.NewDataTable("records")
	require.NoError(suite.T(), New().Fill(table, records))
	require.Equal(suite.T(), 2, table.RowCount())
	require.NotEmpty(suite.T(), table.ColumnNames())
}
