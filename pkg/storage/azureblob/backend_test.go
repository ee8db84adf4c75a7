package azureblob

import "testing"

func TestParsePartsFromConnectionString(t *testing.T) {
	tables := []struct {
		name      string
		connStr   string
		account   string
		key       string
		container string
		found     bool
	}{
		{
			"full connection string",
			"DefaultEndpointsProtocol=https;AccountName=media;AccountKey=c2VjcmV0;EndpointSuffix=core.windows.net;Container=lessons",
			"media", "c2VjcmV0", "lessons", true,
		},
		{"trailing separator", "AccountName=media;AccountKey=a2V5;Container=lessons;", "media", "a2V5", "lessons", true},
		{"missing container", "AccountName=media;AccountKey=a2V5", "", "", "", false},
		{"missing key", "AccountName=media;Container=lessons", "", "", "", false},
		{"garbage part", "AccountName=media;oops;AccountKey=a2V5;Container=lessons", "", "", "", false},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			account, key, container, found := ParsePartsFromConnectionString(table.connStr)
			if found != table.found {
				t.Fatalf("found = %v, want %v", found, table.found)
			}
			if account != table.account || key != table.key || container != table.container {
				t.Fatalf("got (%q, %q, %q), want (%q, %q, %q)", account, key, container, table.account, table.key, table.container)
			}
		})
	}
}
