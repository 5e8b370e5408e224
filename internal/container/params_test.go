package container

import (
	"slices"
	"testing"

	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

func common(buildenv request.BuildEnv) request.Common {
	return request.Common{
		BuildEnv:   buildenv,
		LOSVersion: "20.0",
		Codename:   "cheeseburger",
	}
}

func TestProjectFieldsWithinAllowList(t *testing.T) {
	requests := []request.Request{
		request.Kernel{Common: common(request.EnvDocker), Clean: true},
		request.Assets{
			Common:      common(request.EnvPodman),
			Chroot:      request.ChrootFull,
			ExtraAssets: "extra.json",
			ROMOnly:     true,
			Clean:       true,
		},
		request.Bundle{
			Common:      common(request.EnvDocker),
			PackageType: request.PackageConan,
			ConanUpload: true,
		},
	}

	for _, req := range requests {
		t.Run(req.Module(), func(t *testing.T) {
			fields := Project(req).Fields()
			for key := range fields {
				if !slices.Contains(AllowedFields, key) {
					t.Errorf("field %q is not allow-listed", key)
				}
			}
		})
	}
}

func TestProjectBuildModule(t *testing.T) {
	tests := []struct {
		req  request.Request
		want string
	}{
		{request.Kernel{Common: common(request.EnvDocker)}, "kernel"},
		{request.Assets{Common: common(request.EnvDocker), Chroot: request.ChrootMinimal}, "assets"},
		{request.Bundle{Common: common(request.EnvPodman), PackageType: request.PackageGenericSlim}, "bundle"},
	}

	for _, tt := range tests {
		p := Project(tt.req)
		if p.BuildModule != tt.want {
			t.Errorf("BuildModule = %q, want %q", p.BuildModule, tt.want)
		}
		if p.BuildModule == string(p.BuildEnv) {
			t.Errorf("BuildModule %q must not mirror buildenv", p.BuildModule)
		}
	}
}

func TestProjectKernelExactFields(t *testing.T) {
	fields := Project(request.Kernel{Common: request.Common{
		BuildEnv:   request.EnvDocker,
		LOSVersion: "20.0",
		Codename:   "pixel9",
	}}).Fields()

	want := map[string]any{
		"buildenv":     "docker",
		"build_module": "kernel",
		"codename":     "pixel9",
		"losversion":   "20.0",
		"clean_image":  false,
	}

	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want exactly %v", fields, want)
	}
	for key, value := range want {
		if fields[key] != value {
			t.Errorf("fields[%q] = %v, want %v", key, fields[key], value)
		}
	}
}

func TestProjectOmitsHostOnlySettings(t *testing.T) {
	fields := Project(request.Assets{
		Common: common(request.EnvPodman),
		Chroot: request.ChrootFull,
	}).Fields()

	for _, key := range []string{"log_level", "loglvl", "output", "outlog"} {
		if _, ok := fields[key]; ok {
			t.Errorf("host-only field %q crossed the projection", key)
		}
	}
}

func TestParametersArgs(t *testing.T) {
	tests := []struct {
		name string
		req  request.Request
		want []string
	}{
		{
			name: "kernel",
			req:  request.Kernel{Common: common(request.EnvDocker)},
			want: []string{"kernel", "local", "20.0", "cheeseburger"},
		},
		{
			name: "kernel clean",
			req:  request.Kernel{Common: common(request.EnvDocker), Clean: true},
			want: []string{"kernel", "local", "20.0", "cheeseburger", "--clean"},
		},
		{
			name: "assets",
			req: request.Assets{
				Common:      common(request.EnvPodman),
				Chroot:      request.ChrootMinimal,
				ROMOnly:     true,
				ExtraAssets: "extra.json",
			},
			want: []string{"assets", "local", "20.0", "cheeseburger", "minimal", "--rom-only", "--extra-assets", "extra.json"},
		},
		{
			name: "bundle",
			req: request.Bundle{
				Common:      common(request.EnvDocker),
				PackageType: request.PackageConan,
				ConanUpload: true,
			},
			want: []string{"bundle", "local", "20.0", "cheeseburger", "conan", "--conan-upload"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.req).Args()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}
