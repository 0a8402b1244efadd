package console_test

import (
	"bytes"
	"fmt"
	"testing"
	"xurl/internal/console"
	"xurl/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestReporter_lines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := console.New(&out, &errOut)

	r.Decompiling("/tmp/app.apk")
	r.Decompiled("/home/u/xurl/app_src")
	r.Saved("/home/u/xurl/apk_urls.txt")
	r.NothingFound()

	require.Equal(t, "[*] decompiling /tmp/app.apk ...\n"+
		"[+] apk source code are in: /home/u/xurl/app_src\n"+
		"[-] urls saved on: /home/u/xurl/apk_urls.txt\n"+
		"[!] no urls found\n", out.String())
	require.Empty(t, errOut.String())
}

func TestReporter_Failed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "decompiler failure",
			err:  fmt.Errorf("could not decompile: %w", serrors.With(serrors.ErrExternalTool, "apktool exited with code 1")),
			want: "[!] error in decompilation\n",
		},
		{
			name: "write failure",
			err:  serrors.With(serrors.ErrWrite, "could not write /x"),
			want: "[!] could not write /x\n",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			console.New(&out, &errOut).Failed(tt.err)

			require.Equal(t, tt.want, errOut.String())
			require.Empty(t, out.String())
		})
	}
}
