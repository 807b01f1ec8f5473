package pomfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <parent>
    <groupId>org.onehippo.cms7</groupId>
    <artifactId>hippo-cms7-release</artifactId>
    <version>14.7.0</version>
  </parent>
  <properties>
    <brut.version>4.0.2</brut.version>
    <maven.compiler.source>11</maven.compiler.source>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.bloomreach.forge</groupId>
        <artifactId>brut-managed</artifactId>
        <version>1.0.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>org.bloomreach.forge</groupId>
      <artifactId>brut-common</artifactId>
      <version>${brut.version}</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13.2</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>
`

func TestExtractDependencies(t *testing.T) {
	deps := ExtractDependencies(samplePom)
	require.Len(t, deps, 2)
	assert.Equal(t, Dependency{
		GroupID:    "org.bloomreach.forge",
		ArtifactID: "brut-common",
		Version:    "${brut.version}",
	}, deps[0])
	assert.Equal(t, Dependency{
		GroupID:    "junit",
		ArtifactID: "junit",
		Version:    "4.13.2",
		Scope:      "test",
	}, deps[1])
}

func TestExtractDependencies_SkipsDependencyManagement(t *testing.T) {
	deps := ExtractDependencies(samplePom)
	for _, dep := range deps {
		assert.NotEqual(t, "brut-managed", dep.ArtifactID)
	}
}

func TestExtractDependencies_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "not xml", text: "this is not a pom"},
		{name: "unclosed section", text: "<project><dependencies><dependency>"},
		{name: "missing coordinates", text: "<dependencies><dependency><version>1</version></dependency></dependencies>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ExtractDependencies(tt.text))
		})
	}
}

func TestExtractProperties(t *testing.T) {
	props := ExtractProperties(samplePom)
	assert.Equal(t, "4.0.2", props["brut.version"])
	assert.Equal(t, "11", props["maven.compiler.source"])
	assert.Len(t, props, 2)
}

func TestExtractProperties_OnlyFirstSection(t *testing.T) {
	text := `<project>
  <properties>
    <first.prop>1</first.prop>
  </properties>
  <profiles>
    <properties>
      <second.prop>2</second.prop>
    </properties>
  </profiles>
</project>`
	props := ExtractProperties(text)
	assert.Equal(t, "1", props["first.prop"])
	assert.NotContains(t, props, "second.prop")
}

func TestExtractProperties_Malformed(t *testing.T) {
	assert.Empty(t, ExtractProperties("no properties here"))
}

func TestResolveVersion(t *testing.T) {
	props := map[string]string{"brut.version": "4.0.2"}
	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "literal", expr: "1.2.3", want: "1.2.3"},
		{name: "resolved reference", expr: "${brut.version}", want: "4.0.2"},
		{name: "unknown reference", expr: "${missing.prop}", want: "${missing.prop}"},
		{name: "empty", expr: "", want: ""},
		{name: "partial reference", expr: "v${brut.version}", want: "v${brut.version}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVersion(tt.expr, props))
		})
	}
}

func TestPropertyRef(t *testing.T) {
	assert.Equal(t, "brut.version", PropertyRef("${brut.version}"))
	assert.Empty(t, PropertyRef("4.0.2"))
	assert.Empty(t, PropertyRef(""))
}

func TestExtractParentVersion(t *testing.T) {
	assert.Equal(t, "14.7.0", ExtractParentVersion(samplePom))
	assert.Empty(t, ExtractParentVersion("<project></project>"))
}
