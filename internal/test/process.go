package test

import (
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lotaway/graph-node/internal/process"
	"github.com/lotaway/graph-node/internal/process_mock"
)

// CheckProcessCustomFlags check process defined custom flags
func CheckProcessCustomFlags(t *testing.T, p process.Process, wantFlags []string) {
	var names []string
	for _, customFlag := range p.CustomFlags() {
		names = append(names, customFlag.Names()[0])
	}

	if !reflect.DeepEqual(names, wantFlags) {
		t.Errorf("Differents flags: %v %v", names, wantFlags)
	}
}

// CheckInitialize check process initialization phase
func CheckInitialize(t *testing.T, p process.Process, callback func(provider *process_mock.MockProviderMockRecorder)) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	providerMock := process_mock.NewMockProvider(mockCtrl)
	callback(providerMock.EXPECT())

	if err := p.Initialize(providerMock); err != nil {
		t.Errorf("Error while Initializing process: %s", err)
	}
}
