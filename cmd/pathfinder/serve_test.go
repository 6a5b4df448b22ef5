package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:4000", "ssh localhost -p 4000"},
		{"[::]:4000", "ssh localhost -p 4000"},
		{"example.org:2022", "ssh example.org -p 2022"},
		{"127.0.0.1:22", "ssh 127.0.0.1"},
		{"no-port", "ssh no-port"},
	}

	for _, tc := range tests {
		if got := connectHint(tc.addr); got != tc.want {
			t.Errorf("connectHint(%q) = %q, expected %q", tc.addr, got, tc.want)
		}
	}
}
